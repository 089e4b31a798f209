package votewallet

// VotePackage is an immutable catalog entry. Price is in the minor
// currency unit (kobo).
type VotePackage struct {
	ID          string
	Name        string
	Votes       int
	Price       int
	Description string
	Features    []string
	Popular     bool
}

var packages = []VotePackage{
	{
		ID:          "single",
		Name:        "Single Vote",
		Votes:       1,
		Price:       5000,
		Description: "Support young cultural ambassadors",
		Features: []string{
			"Support young ambassadors",
			"Promote Nigerian heritage",
			"Help preserve our culture",
		},
	},
	{
		ID:          "power",
		Name:        "Power Vote",
		Votes:       5,
		Price:       25000,
		Description: "Get more voting power with 5 votes",
		Features: []string{
			"Support young ambassadors",
			"Promote Nigerian heritage",
			"Help preserve our culture",
			"Better value for money",
		},
	},
	{
		ID:          "super",
		Name:        "Super Vote",
		Votes:       10,
		Price:       50000,
		Description: "Maximum impact with 10 votes + bonus features",
		Popular:     true,
		Features: []string{
			"Support young ambassadors",
			"Promote Nigerian heritage",
			"Help preserve our culture",
			"Receive digital certificate",
			"Priority contest updates",
		},
	},
}

// Packages returns a copy of the compiled-in catalog.
func Packages() []VotePackage {
	result := make([]VotePackage, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, copyPackage(pkg))
	}

	return result
}

// PackageByID returns a copy of the catalog entry with the given id.
func PackageByID(id string) (VotePackage, bool) {
	for _, pkg := range packages {
		if pkg.ID == id {
			return copyPackage(pkg), true
		}
	}

	return VotePackage{}, false
}

func copyPackage(pkg VotePackage) VotePackage {
	result := pkg
	result.Features = append([]string(nil), pkg.Features...)

	return result
}
