package semid

import "fmt"

// URNKind distinguishes the two URN forms spec.md §6.2 defines.
type URNKind int

const (
	URNLib URNKind = iota
	URNType
)

// URN renders id as "urn:sten:lib:<LibId>" or "urn:sten:id:<SemId>".
func URN(kind URNKind, hri string, id ID) string {
	switch kind {
	case URNLib:
		return fmt.Sprintf("urn:sten:lib:%s", id.Baid58(hri))
	default:
		return fmt.Sprintf("urn:sten:id:%s", id.Baid58(hri))
	}
}

// URNMnemonic renders the alt URN form with a "#mnemonic" suffix derived
// from four bytes at offset 14..18 of the id, per spec.md §6.2.
func URNMnemonic(kind URNKind, hri string, id ID) string {
	return fmt.Sprintf("%s#%s", URN(kind, hri, id), mnemonic(id[14:18]))
}

// mnemonicWords is a small, fixed 256-entry word list used to render four
// id bytes as a human-pronounceable dash-joined mnemonic. It has no
// relation to BIP-39 wordlists; it exists purely so two equal id's render
// the same mnemonic and two different ids are unlikely to collide across
// a handful of words, which is all spec.md asks of the alt display form.
var mnemonicWords = [256]string{
	"abbey", "acid", "acorn", "actor", "adapt", "adept", "agile", "ahead",
	"alarm", "alloy", "amber", "angle", "apple", "arbor", "arena", "armor",
	"arrow", "ashen", "atlas", "atom", "aura", "autumn", "avian", "axiom",
	"azure", "badge", "baker", "banjo", "basil", "beach", "beam", "bear",
	"bison", "blaze", "bloom", "blue", "boat", "bold", "bone", "brace",
	"brave", "brick", "bridge", "brisk", "brook", "cabin", "cable", "cadet",
	"camel", "canal", "candy", "canvas", "cargo", "carol", "cedar", "cello",
	"chalk", "charm", "chess", "chief", "chord", "cider", "civic", "clamp",
	"clash", "clasp", "cliff", "cloak", "clock", "cloud", "clover", "coast",
	"cobra", "coral", "cosmo", "cove", "crane", "crate", "creek", "crisp",
	"crown", "cubic", "curly", "dandy", "dash", "dawn", "delta", "depth",
	"derby", "diner", "disco", "dizzy", "dock", "dome", "donor", "dove",
	"draft", "drift", "drum", "dusty", "eagle", "early", "east", "ebony",
	"echo", "eden", "edge", "eel", "elbow", "elder", "elite", "ember",
	"emery", "enjoy", "epoch", "equal", "essay", "ether", "ethic", "event",
	"exile", "facet", "falcon", "fancy", "fauna", "fiber", "field", "final",
	"finch", "first", "flame", "flare", "flash", "fleet", "flint", "flora",
	"flute", "focal", "focus", "forge", "forum", "fossil", "frame", "frost",
	"gable", "gala", "gamma", "garde", "gauge", "gecko", "gem", "genie",
	"giant", "glade", "glass", "gleam", "globe", "glory", "gnome", "grain",
	"grape", "graph", "grass", "grove", "guild", "habit", "halo", "harbor",
	"harp", "hasty", "haven", "hazel", "heron", "hive", "honor", "horde",
	"horn", "hover", "human", "humus", "hutch", "hydro", "ibis", "icon",
	"idiom", "igloo", "image", "index", "inlet", "ionic", "irony", "ivory",
	"jade", "jazzy", "jewel", "joker", "jolly", "joule", "judge", "juicy",
	"kayak", "kelp", "kiosk", "kiwi", "knoll", "koala", "label", "lance",
	"lapis", "larch", "laser", "latch", "laurel", "lemon", "level", "lilac",
	"lily", "linen", "lotus", "lunar", "lupin", "lyric", "magma", "maple",
	"march", "marsh", "maven", "mecha", "melon", "mercy", "merit", "metro",
	"micro", "mille", "mimic", "minty", "mirth", "mocha", "model", "moist",
	"moody", "moral", "motif", "mound", "mural", "music", "myrrh", "nadir",
	"naive", "nectar", "nexus", "niche", "noble", "nomad", "north", "nova",
}

func mnemonic(b []byte) string {
	out := ""
	for i, x := range b {
		if i > 0 {
			out += "-"
		}
		out += mnemonicWords[x]
	}
	return out
}
