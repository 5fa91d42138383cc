package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/curtain-cli/curtain/color"
	"github.com/curtain-cli/curtain/constant"
	"github.com/curtain-cli/curtain/key"
	"github.com/curtain-cli/curtain/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrUnknownKey is returned for keys missing from Default.
var ErrUnknownKey = errors.New("unknown key")

// Field is a registered setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Curtain + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Modified reports whether the effective value differs from the default.
func (f *Field) Modified() bool {
	return fmt.Sprint(viper.Get(f.Key)) != fmt.Sprint(f.Value)
}

// Parse converts command line arguments to a value of the field's type.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", f.Key, raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", f.Key, raw[0])
		}
		return v, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", f.Key, f.typeName())
	}
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

// Keys lists the registered keys in order.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

// Lookup returns the field for k. Unknown keys yield ErrUnknownKey naming the
// closest registered key.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, fmt.Errorf(
		"%w %s, did you mean %s?",
		ErrUnknownKey,
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}

func init() {
	for _, f := range []Field{
		{key.Player, "mpv", "Video surface to use.\nAvailable options are: mpv, iina"},
		{key.PlayerStartMuted, false, "Start playback with audio muted"},
		{key.PlayerLoop, false, "Restart from the beginning at the end of the video"},
		{key.PlayerLaunchOnMount, true, "Start loading the video as soon as the player opens"},
		{key.PlayerSynthesizeReady, false, "Treat the loaded signal as ready for display.\nUse with players that never report their first frame"},

		{key.ControlsEnabled, true, "Show transport controls"},
		{key.ControlsAutoHideSeconds, 8, "Seconds without interaction before the controls hide"},
		{key.ControlsShowOnPause, true, "Show the controls before pausing and hide them before resuming"},
		{key.ControlsCloseButton, true, "Offer the close button"},
		{key.ControlsStopButton, true, "Offer the stop button"},
		{key.ControlsResizeButton, true, "Offer the minimize button when the video does not fit the window"},

		{key.TUISmall, false, "Small presentation.\nOnly play/pause and close are offered"},
		{key.TUIFrameRate, 30, "Redraws per second while something is animating"},
		{key.TUIShowThumbnailPath, true, "Show the thumbnail path on the preview layer"},

		{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

		{key.LogsWrite, false, "Write logs"},
		{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
		{key.LogsJson, false, "Use json format for logs"},

		{key.CliColored, true, "Enable colored CLI output"},
	} {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(f *Field) string { return f.typeName() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(strconv.Quote(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}{{ if .Modified }} {{ faint "(modified)" }}{{ end }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename . }}`))
