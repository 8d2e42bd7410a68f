package domain

// ItemKind discriminates the three schedulable item kinds.
type ItemKind string

const (
	KindLodging        ItemKind = "lodging"
	KindTransportation ItemKind = "transportation"
	KindActivity       ItemKind = "activity"
)

// ValidItemKinds is the canonical set of accepted item kind strings.
var ValidItemKinds = map[string]bool{
	"lodging": true, "transportation": true, "activity": true,
}

// Color returns the display color for a kind as a hex string.
// Color is derived purely from kind; there is no per-item override.
func (k ItemKind) Color() string {
	switch k {
	case KindLodging:
		return "#7D56F4"
	case KindTransportation:
		return "#04B575"
	default:
		return "#F2A33C"
	}
}

// Icon returns the single-cell glyph used to tag items of this kind.
func (k ItemKind) Icon() string {
	switch k {
	case KindLodging:
		return "⌂"
	case KindTransportation:
		return "➤"
	default:
		return "●"
	}
}

type DisplayMode string

const (
	ModeDay   DisplayMode = "day"
	ModeWeek  DisplayMode = "week"
	ModeMonth DisplayMode = "month"
)

type TransportMode string

const (
	TransportFlight TransportMode = "flight"
	TransportTrain  TransportMode = "train"
	TransportBus    TransportMode = "bus"
	TransportCar    TransportMode = "car"
	TransportFerry  TransportMode = "ferry"
)
