package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Download Icon = iota + 1
	Success
	Fail
	Video
	Audio
	Question
	Progress
)

// icons maps each Icon identifier to its per-variant representations.
var icons = map[Icon]*iconDef{
	Download: {
		emoji:   "⬇️",
		nerd:    "",
		plain:   "v",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🔲",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(￣▽￣)ノ",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "#",
		kaomoji: "(⌐■_■)",
		squares: "🟦",
	},
	Audio: {
		emoji:   "🎵",
		nerd:    "",
		plain:   "*",
		kaomoji: "(￣﹃￣)",
		squares: "🟪",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ ) ?",
		squares: "🟧",
	},
	Progress: {
		emoji:   "📶",
		nerd:    "",
		plain:   "=",
		kaomoji: "(ง •̀_•́)ง",
		squares: "🟫",
	},
}
