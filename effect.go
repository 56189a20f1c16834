package tint

// Effect is one of the nine independent text attributes. Effects are
// orthogonal booleans on a Style; any subset may be active at once.
type Effect uint8

const (
	Bold Effect = iota
	Dimmed
	Italic
	Underline
	Blink
	BlinkFast
	Reversed
	Hidden
	Strikethrough
)

// numEffects is the size of the effect set; SGR codes are 1..numEffects in
// declaration order.
const numEffects = int(Strikethrough) + 1

var effectNames = [numEffects]string{
	"bold", "dimmed", "italic", "underline", "blink", "blink-fast",
	"reversed", "hidden", "strikethrough",
}

func (e Effect) String() string {
	if int(e) < numEffects {
		return effectNames[e]
	}
	return "unknown"
}
