// Package mapping holds the static channel-to-column tables. Keys are
// normalized channels (long-note channels folded onto 1x/2x); values are
// opaque column identifiers that the rest of the system never interprets.
package mapping

type Mapping = map[string]string

var IIDXP1 = Mapping{
	"11": "1",
	"12": "2",
	"13": "3",
	"14": "4",
	"15": "5",
	"18": "6",
	"19": "7",
	"16": "SC",
}

var IIDXP2 = Mapping{
	"21": "1",
	"22": "2",
	"23": "3",
	"24": "4",
	"25": "5",
	"28": "6",
	"29": "7",
	"26": "SC",
}

func Default() Mapping {
	return IIDXP1
}
