package authority

import (
	"os"
	"testing"

	"github.com/flywave/go-crs/iso19111/crs"
)

const testDBPath = "./test_authority.sqlite"

func openTestAuthority(t *testing.T) *SQLiteAuthority {
	t.Helper()
	os.Remove(testDBPath)
	a, err := Open(testDBPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		a.Close()
		os.Remove(testDBPath)
	})
	return a
}

func TestResolveAliasMiss(t *testing.T) {
	a := openTestAuthority(t)
	if _, ok := a.ResolveAlias("Mercator (variant A)", "method", "ESRI"); ok {
		t.Fatalf("expected miss on empty database")
	}
}

func TestResolveAliasHit(t *testing.T) {
	a := openTestAuthority(t)
	row := crsAlias{OfficialName: "Mercator (variant A)", Kind: "method", TargetAuthority: "ESRI", AliasedName: "Mercator"}
	if err := a.db.Create(&row).Error; err != nil {
		t.Fatalf("seeding alias row: %v", err)
	}
	got, ok := a.ResolveAlias("Mercator (variant A)", "method", "ESRI")
	if !ok || got != "Mercator" {
		t.Fatalf("ResolveAlias = (%q, %v), want (\"Mercator\", true)", got, ok)
	}
}

func TestCreateCRSFromStoredDefinition(t *testing.T) {
	a := openTestAuthority(t)
	code := 4326
	row := spatialRefSys{
		Name: "WGS 84", SpatialReferenceSystemId: &code, Organization: "epsg", OrganizationCoordinateSystemId: &code,
		Definition: `GEOGCS["WGS 84",DATUM["World Geodetic System 1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]],AUTHORITY["EPSG","4326"]]`,
	}
	if err := a.db.Create(&row).Error; err != nil {
		t.Fatalf("seeding srs row: %v", err)
	}
	c, err := a.CreateCRS("EPSG", "4326")
	if err != nil {
		t.Fatalf("CreateCRS: %v", err)
	}
	geo, ok := c.(*crs.GeodeticCRS)
	if !ok || !geo.IsGeographic() {
		t.Fatalf("expected a geographic CRS, got %T", c)
	}
}

func TestCreateCRSNotFound(t *testing.T) {
	a := openTestAuthority(t)
	if _, err := a.CreateCRS("EPSG", "999999"); err == nil {
		t.Fatalf("expected NotFound error for unseeded code")
	}
}

func TestCreateOperationsNoRowReturnsNilNotError(t *testing.T) {
	a := openTestAuthority(t)
	ops, err := a.CreateOperations(crs.EPSG4326, crs.EPSG4326)
	if err != nil {
		t.Fatalf("CreateOperations: %v", err)
	}
	if ops != nil {
		t.Fatalf("expected no candidate operations, got %v", ops)
	}
}
