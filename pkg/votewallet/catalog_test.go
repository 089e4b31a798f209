package votewallet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestPackagesShouldContainExactlyThreeEntries() {
	packages := votewallet.Packages()

	s.Require().Len(packages, 3)
	s.Equal("single", packages[0].ID)
	s.Equal("power", packages[1].ID)
	s.Equal("super", packages[2].ID)
}

func (s *CatalogTestSuite) TestPackageVotesAndPricesShouldMatchCatalog() {
	for _, expected := range []struct {
		id    string
		votes int
		price int
	}{
		{"single", 1, 5000},
		{"power", 5, 25000},
		{"super", 10, 50000},
	} {
		pkg, ok := votewallet.PackageByID(expected.id)
		s.Require().True(ok)
		s.Equal(expected.votes, pkg.Votes)
		s.Equal(expected.price, pkg.Price)
	}
}

func (s *CatalogTestSuite) TestOnlySuperPackageShouldBePopular() {
	for _, pkg := range votewallet.Packages() {
		s.Equal(pkg.ID == "super", pkg.Popular)
	}
}

func (s *CatalogTestSuite) TestPackageByIDShouldRejectUnknownID() {
	_, ok := votewallet.PackageByID("mega")
	s.False(ok)
}

func (s *CatalogTestSuite) TestPackageByIDShouldReturnIndependentCopies() {
	pkg, ok := votewallet.PackageByID("single")
	s.Require().True(ok)

	pkg.Features[0] = "mutated"

	again, _ := votewallet.PackageByID("single")
	s.Equal("Support young ambassadors", again.Features[0])
}
