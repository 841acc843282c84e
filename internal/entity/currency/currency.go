package currency

// Mode is one selectable currency of the KHQR popup. The set of modes is
// closed: values can only be obtained from this package.
type Mode struct {
	key      string
	imageSrc string
	altText  string
}

var all = [...]Mode{
	{key: "a", imageSrc: "images/qrcode/khr.webp", altText: "Khmer Riel"},
	{key: "b", imageSrc: "images/qrcode/usd.webp", altText: "US Dollar"},
}

// Riel and Dollar are read-only shortcuts; Lookup and Modes never see a
// reassignment of them.
var (
	Riel   = all[0]
	Dollar = all[1]
)

// Modes returns a copy of every mode in display order.
func Modes() []Mode {
	return append([]Mode(nil), all[:]...)
}

func (m Mode) Key() string {
	return m.key
}

func (m Mode) ImageSrc() string {
	return m.imageSrc
}

func (m Mode) AltText() string {
	return m.altText
}

func (m Mode) String() string {
	return m.altText
}

// Lookup returns the mode with the given key.
func Lookup(key string) (Mode, bool) {
	for _, m := range all {
		if m.key == key {
			return m, true
		}
	}
	return Mode{}, false
}

func Keys() []string {
	res := make([]string, 0, len(all))
	for _, m := range all {
		res = append(res, m.key)
	}
	return res
}
