package gene

// Role is the grammatical function of a decoder label.
type Role uint8

const (
	Other Role = iota // unclassified; also the state before the first interval
	Intergenic
	Start
	Coding
	Donor
	Acceptor
	StopFirst
	StopSecond
	SingleExonStart
	SingleExonEnd
)

var roleNames = [...]string{
	Other:           "other",
	Intergenic:      "intergenic",
	Start:           "start",
	Coding:          "coding",
	Donor:           "donor",
	Acceptor:        "acceptor",
	StopFirst:       "stop_first",
	StopSecond:      "stop_second",
	SingleExonStart: "single_exon_start",
	SingleExonEnd:   "single_exon_end",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "role(?)"
}

// ParseRole maps a configuration name ("stop_first", ...) to a Role.
func ParseRole(name string) (Role, bool) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return Other, false
}
