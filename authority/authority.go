package authority

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/pkg/errors"

	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/wkt"
)

// SQLiteAuthority is a thin read-only façade over a gorm-managed SQLite
// database, implementing crs.AuthorityFactory. The lookup methods take a
// read lock on mu and Close takes the write lock, modeling the
// process-wide coarse lock a real deployment would put around its
// authority database.
type SQLiteAuthority struct {
	mu sync.RWMutex
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and ensures its
// three lookup tables exist.
func Open(path string) (*SQLiteAuthority, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		log.Printf("authority: failed to open %s: %v", path, err)
		return nil, errors.Wrap(err, "opening authority database")
	}
	a := &SQLiteAuthority{db: db}
	if err := a.autoMigrate(); err != nil {
		log.Printf("authority: failed to migrate %s: %v", path, err)
		return nil, err
	}
	return a, nil
}

func (a *SQLiteAuthority) autoMigrate() error {
	if err := a.db.AutoMigrate(spatialRefSys{}).Error; err != nil {
		return errors.Wrap(err, "migrating crs_spatial_ref_sys")
	}
	if err := a.db.AutoMigrate(crsAlias{}).Error; err != nil {
		return errors.Wrap(err, "migrating crs_alias")
	}
	if err := a.db.AutoMigrate(towgs84Row{}).Error; err != nil {
		return errors.Wrap(err, "migrating crs_towgs84")
	}
	return nil
}

// Close releases the underlying database handle.
func (a *SQLiteAuthority) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db.Close()
}

// ResolveAlias implements crs.AuthorityFactory: it looks up the recorded
// alias for name/kind under targetAuthority (e.g. the WKT1-ESRI name for
// an EPSG method), falling back to (\"\", false) so callers apply their
// deterministic morphism instead.
func (a *SQLiteAuthority) ResolveAlias(name, kind, targetAuthority string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var row crsAlias
	err := a.db.Where(crsAlias{OfficialName: name, Kind: kind, TargetAuthority: targetAuthority}).First(&row).Error
	if err != nil {
		return "", false
	}
	return row.AliasedName, true
}

// CreateCRS implements crs.AuthorityFactory: look up the (authority, code)
// pair's stored WKT definition and parse it.
func (a *SQLiteAuthority) CreateCRS(authority, code string) (crs.CRS, error) {
	a.mu.RLock()
	row, err := a.lookupSRS(authority, code)
	a.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	c, err := wkt.Parse(row.Definition)
	if err != nil {
		return nil, crserr.Wrap(err, crserr.NotFound, "parsing stored definition for "+authority+":"+code)
	}
	return c, nil
}

func (a *SQLiteAuthority) lookupSRS(authority, code string) (spatialRefSys, error) {
	codeInt, err := strconv.Atoi(code)
	if err != nil {
		return spatialRefSys{}, crserr.Newf(crserr.NotFound, "authority code %q is not numeric", code)
	}
	var row spatialRefSys
	q := a.db.Where(spatialRefSys{Organization: strings.ToLower(authority), OrganizationCoordinateSystemId: &codeInt}).First(&row)
	if q.Error != nil {
		return spatialRefSys{}, crserr.Newf(crserr.NotFound, "no stored definition for %s:%s", authority, code)
	}
	return row, nil
}

// CreateOperations implements crs.AuthorityFactory: returns the single
// stored Helmert transformation for the (source, target) EPSG pair, if
// any — enough to exercise crs.CreateBoundCRSToWGS84IfPossible without a
// full operation-search graph.
func (a *SQLiteAuthority) CreateOperations(source, target crs.CRS) ([]*operation.Transformation, error) {
	srcAuth, srcCode, ok1 := firstEPSGID(source)
	dstAuth, dstCode, ok2 := firstEPSGID(target)
	if !ok1 || !ok2 {
		return nil, nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	var row towgs84Row
	err := a.db.Where(towgs84Row{SourceAuthority: srcAuth, SourceCode: srcCode, TargetAuthority: dstAuth, TargetCode: dstCode}).First(&row).Error
	if err != nil {
		return nil, nil
	}
	var t *operation.Transformation
	if row.Rx == 0 && row.Ry == 0 && row.Rz == 0 && row.Scale == 0 {
		t = operation.NewGeocentricTranslation(row.MethodEPSGCode, row.Tx, row.Ty, row.Tz)
	} else {
		t = operation.NewPositionVectorTransformation(row.MethodEPSGCode, row.Tx, row.Ty, row.Tz, row.Rx, row.Ry, row.Rz, row.Scale)
	}
	return []*operation.Transformation{t}, nil
}

func firstEPSGID(c crs.CRS) (authority, code string, ok bool) {
	if c == nil {
		return "", "", false
	}
	for _, id := range c.CRSIdentifiers() {
		if strings.EqualFold(id.CodeSpace, "EPSG") {
			return "EPSG", id.Code, true
		}
	}
	return "", "", false
}
