// Public domain.

package sparc

// Hubble type codes T.
const (
	TUnknown = -1
	TS0      = 0
	TSab     = 2
	TSd      = 7
	TBCD     = 11
)

// hubbleType is the Hubble type of each galaxy in the SPARC sample.
var hubbleType = map[string]int{
	"CamB": 10, "D512-2": 10, "D564-8": 10, "D631-7": 10, "DDO064": 10,
	"DDO154": 10, "DDO161": 10, "DDO168": 10, "DDO170": 10, "ESO079-G014": 4,
	"ESO116-G012": 7, "ESO444-G084": 10, "ESO563-G021": 4, "F561-1": 9,
	"F563-1": 9, "F563-V1": 10, "F563-V2": 10, "F565-V2": 10, "F567-2": 9,
	"F568-1": 5, "F568-3": 7, "F568-V1": 7, "F571-8": 5, "F571-V1": 7,
	"F574-1": 7, "F574-2": 9, "F579-V1": 5, "F583-1": 9, "F583-4": 5,
	"IC2574": 9, "IC4202": 4, "KK98-251": 10, "NGC0024": 5, "NGC0055": 9,
	"NGC0100": 6, "NGC0247": 7, "NGC0289": 4, "NGC0300": 7, "NGC0801": 5,
	"NGC0891": 3, "NGC1003": 6, "NGC1090": 4, "NGC1705": 11, "NGC2366": 10,
	"NGC2403": 6, "NGC2683": 3, "NGC2841": 3, "NGC2903": 4, "NGC2915": 11,
	"NGC2955": 3, "NGC2976": 5, "NGC2998": 5, "NGC3109": 9, "NGC3198": 5,
	"NGC3521": 4, "NGC3726": 5, "NGC3741": 10, "NGC3769": 3, "NGC3877": 5,
	"NGC3893": 5, "NGC3917": 6, "NGC3949": 4, "NGC3953": 4, "NGC3972": 4,
	"NGC3992": 4, "NGC4010": 7, "NGC4013": 3, "NGC4051": 4, "NGC4068": 10,
	"NGC4085": 5, "NGC4088": 4, "NGC4100": 4, "NGC4138": 0, "NGC4157": 3,
	"NGC4183": 6, "NGC4214": 10, "NGC4217": 3, "NGC4389": 4, "NGC4559": 6,
	"NGC5005": 4, "NGC5033": 5, "NGC5055": 4, "NGC5371": 4, "NGC5585": 7,
	"NGC5907": 5, "NGC5985": 3, "NGC6015": 6, "NGC6195": 3, "NGC6503": 6,
	"NGC6674": 3, "NGC6789": 11, "NGC6946": 6, "NGC7331": 3, "NGC7793": 7,
	"NGC7814": 2, "PGC51017": 11, "UGC00128": 8, "UGC00191": 9, "UGC00634": 9,
	"UGC00731": 10, "UGC00891": 9, "UGC01230": 9, "UGC01281": 8,
	"UGC02023": 10, "UGC02259": 8, "UGC02487": 0, "UGC02885": 5,
	"UGC02916": 2, "UGC02953": 2, "UGC03205": 2, "UGC03546": 1, "UGC03580": 1,
	"UGC04278": 7, "UGC04305": 10, "UGC04325": 9, "UGC04483": 10,
	"UGC04499": 8, "UGC05005": 10, "UGC05253": 2, "UGC05414": 10,
	"UGC05716": 9, "UGC05721": 7, "UGC05750": 8, "UGC05764": 10,
	"UGC05829": 10, "UGC05918": 10, "UGC05986": 9, "UGC05999": 10,
	"UGC06399": 9, "UGC06446": 7, "UGC06614": 1, "UGC06628": 9, "UGC06667": 6,
	"UGC06786": 0, "UGC06787": 2, "UGC06818": 9, "UGC06917": 9,
	"UGC06923": 10, "UGC06930": 7, "UGC06973": 2, "UGC06983": 6,
	"UGC07089": 8, "UGC07125": 9, "UGC07151": 6, "UGC07232": 10,
	"UGC07261": 8, "UGC07323": 8, "UGC07399": 8, "UGC07524": 9,
	"UGC07559": 10, "UGC07577": 10, "UGC07603": 7, "UGC07608": 10,
	"UGC07690": 10, "UGC07866": 10, "UGC08286": 6, "UGC08490": 9,
	"UGC08550": 7, "UGC08699": 2, "UGC08837": 10, "UGC09037": 6,
	"UGC09133": 2, "UGC09992": 10, "UGC10310": 9, "UGC11455": 6,
	"UGC11557": 8, "UGC11820": 9, "UGC11914": 2, "UGC12506": 6, "UGC12632": 9,
	"UGC12732": 9, "UGCA281": 11, "UGCA442": 9, "UGCA444": 10,
}

// HubbleType returns the Hubble type code T of a SPARC galaxy, TUnknown if
// the name is not in the sample.
func HubbleType(name string) int {
	if t, ok := hubbleType[name]; ok {
		return t
	}
	return TUnknown
}

// Morphology lists the morphological labels, indexed by T.
var Morphology = []struct {
	Abbr, Heading string
}{
	{"S0", "Lenticular"},
	{"Sa", "Tightly wound spiral"},
	{"Sab", "Early spiral"},
	{"Sb", "Spiral"},
	{"Sbc", "Spiral"},
	{"Sc", "Loosely wound spiral"},
	{"Scd", "Late spiral"},
	{"Sd", "Late spiral"},
	{"Sdm", "Magellanic spiral"},
	{"Sm", "Magellanic spiral"},
	{"Im", "Magellanic irregular"},
	{"BCD", "Blue compact dwarf"},
}

// MorphologyLabel returns the label for Hubble type t, "Unknown" if t is
// out of range.
func MorphologyLabel(t int) string {
	if t < 0 || t >= len(Morphology) {
		return "Unknown"
	}
	return Morphology[t].Abbr
}

// Group is a coarse morphological class.
type Group int

const (
	GroupEarly     Group = iota // S0 to Sab
	GroupDisk                   // Sb to Sd
	GroupIrregular              // Sdm, Sm, Im, BCD
)

var groupName = [...]string{"early", "disk", "irreg"}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupName) {
		return "unknown"
	}
	return groupName[g]
}

// GroupOf returns the morphological group of Hubble type t.
//
// Unknown types fall in GroupEarly with the other low codes.
func GroupOf(t int) Group {
	switch {
	case t <= TSab:
		return GroupEarly
	case t <= TSd:
		return GroupDisk
	}
	return GroupIrregular
}
