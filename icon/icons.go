package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota
	Pause
	Stop
	Close
	Rewind
	Forward
	Speed
	Minimize
	Maximize
	Loading
	Ended
	Fail
	Success
	Config
	Mark
)

var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▷‿▷)",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－‸ლ)",
		squares: "⏸",
	},
	Stop: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(￣ー￣)",
		squares: "■",
	},
	Close: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "⊠",
	},
	Rewind: {
		emoji:   "⏪",
		nerd:    "",
		plain:   "<<",
		kaomoji: "(◁_◁)",
		squares: "◀◀",
	},
	Forward: {
		emoji:   "⏩",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(▷_▷)",
		squares: "▶▶",
	},
	Speed: {
		emoji:   "⏱️",
		nerd:    "",
		plain:   "~",
		kaomoji: "(ﾉ´ヮ`)ﾉ",
		squares: "◷",
	},
	Minimize: {
		emoji:   "🔽",
		nerd:    "",
		plain:   "-",
		kaomoji: "(・_・)",
		squares: "▣",
	},
	Maximize: {
		emoji:   "🔼",
		nerd:    "",
		plain:   "+",
		kaomoji: "(⊙_⊙)",
		squares: "□",
	},
	Loading: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・ )?",
		squares: "◌",
	},
	Ended: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "end",
		kaomoji: "(￣▽￣)ノ",
		squares: "▤",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Config: {
		emoji:   "⚙️",
		nerd:    "",
		plain:   "*",
		kaomoji: "(⚙_⚙)",
		squares: "▦",
	},
	Mark: {
		emoji:   "▶",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>‿◠)✌",
		squares: "▸",
	},
}
