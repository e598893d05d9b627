// Package authority implements the pluggable EPSG/ESRI lookup capability:
// a read-only, SQLite/gorm-backed AuthorityFactory mirroring the row shape
// flywave-go-gpkg uses for its own spatial_ref_sys table.
package authority

// spatialRefSys is the row shape of the srs table: (organization,
// organization_coordsys_id) identifies a CRS, definition holds its WKT
// text. Column names and struct shape mirror flywave-go-gpkg's
// SpatialReferenceSystem.
type spatialRefSys struct {
	Name                           string `gorm:"column:srs_name;unique;not null;primary_key"`
	SpatialReferenceSystemId       *int   `gorm:"column:srs_id;unique;not null;primary_key"`
	Organization                   string `gorm:"column:organization;not null"`
	OrganizationCoordinateSystemId *int   `gorm:"column:organization_coordsys_id;not null"`
	Definition                     string `gorm:"column:definition;not null"`
	Description                    string `gorm:"column:description"`
}

func (spatialRefSys) TableName() string { return "crs_spatial_ref_sys" }

// crsAlias backs ResolveAlias: a WKT1-ESRI (or other target-authority)
// name recorded against the object's official name and kind.
type crsAlias struct {
	OfficialName    string `gorm:"column:official_name;not null;primary_key"`
	Kind            string `gorm:"column:kind;not null;primary_key"`
	TargetAuthority string `gorm:"column:target_authority;not null;primary_key"`
	AliasedName     string `gorm:"column:aliased_name;not null"`
}

func (crsAlias) TableName() string { return "crs_alias" }

// towgs84Row backs CreateOperations: a single stored Helmert (3- or
// 7-parameter) transformation between a source and target CRS pair,
// identified by EPSG code.
type towgs84Row struct {
	SourceAuthority string  `gorm:"column:source_authority;not null;primary_key"`
	SourceCode      string  `gorm:"column:source_code;not null;primary_key"`
	TargetAuthority string  `gorm:"column:target_authority;not null;primary_key"`
	TargetCode      string  `gorm:"column:target_code;not null;primary_key"`
	MethodEPSGCode  string  `gorm:"column:method_epsg_code;not null"`
	Tx              float64 `gorm:"column:tx;not null"`
	Ty              float64 `gorm:"column:ty;not null"`
	Tz              float64 `gorm:"column:tz;not null"`
	Rx              float64 `gorm:"column:rx"`
	Ry              float64 `gorm:"column:ry"`
	Rz              float64 `gorm:"column:rz"`
	Scale           float64 `gorm:"column:scale_ppm"`
}

func (towgs84Row) TableName() string { return "crs_towgs84" }
