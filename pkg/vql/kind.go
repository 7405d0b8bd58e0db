package vql

import (
	"strings"

	"github.com/vqltools/vqlkeeper/pkg/consts"
)

// Kind identifies the category of a Denodo object. The values match the
// chapter names Denodo uses in exported VQL scripts.
type Kind string

const (
	KindI18NMaps          Kind = "I18N MAPS"
	KindDatabase          Kind = "DATABASE"
	KindFolders           Kind = "FOLDERS"
	KindListenersJMS      Kind = "LISTENERS JMS"
	KindDatasources       Kind = "DATASOURCES"
	KindWrappers          Kind = "WRAPPERS"
	KindStoredProcedures  Kind = "STORED PROCEDURES"
	KindTypes             Kind = "TYPES"
	KindMaps              Kind = "MAPS"
	KindBaseViews         Kind = "BASE VIEWS"
	KindViews             Kind = "VIEWS"
	KindAssociations      Kind = "ASSOCIATIONS"
	KindWebservices       Kind = "WEBSERVICES"
	KindWidgets           Kind = "WIDGETS"
	KindWebServiceDeploys Kind = "WEBCONTAINER WEB SERVICE DEPLOYMENTS"
	KindWidgetDeploys     Kind = "WEBCONTAINER WIDGET DEPLOYMENTS"
)

// kinds lists all kinds in the order Denodo writes their chapters into an
// export file. This order is also the canonical sort order for rendering.
var kinds = []Kind{
	KindI18NMaps,
	KindDatabase,
	KindFolders,
	KindListenersJMS,
	KindDatasources,
	KindWrappers,
	KindStoredProcedures,
	KindTypes,
	KindMaps,
	KindBaseViews,
	KindViews,
	KindAssociations,
	KindWebservices,
	KindWidgets,
	KindWebServiceDeploys,
	KindWidgetDeploys,
}

var kindOrder = func() map[Kind]int {
	m := make(map[Kind]int, len(kinds))
	for i, k := range kinds {
		m[k] = i
	}
	return m
}()

// Kinds returns all object kinds in export (chapter) order. The returned
// slice is a copy and may be modified by the caller.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is one of the known object kinds.
func (k Kind) Valid() bool {
	_, ok := kindOrder[k]
	return ok
}

// Order returns the position of k in export order. Unknown kinds sort after
// all known ones.
func (k Kind) Order() int {
	if i, ok := kindOrder[k]; ok {
		return i
	}
	return len(kinds)
}

// DirName returns the repository folder name for the kind
// (e.g. "BASE VIEWS" -> "BASE_VIEWS").
func (k Kind) DirName() string {
	return strings.ReplaceAll(string(k), " ", "_")
}

// Banner returns the comment banner that introduces this kind's chapter in
// an export file.
func (k Kind) Banner() string {
	return consts.BannerRule + "\n# " + string(k) + "\n" + consts.BannerRule + "\n"
}

// KindFromDir maps a repository folder name back to its kind. It returns
// false for folder names that don't correspond to a known kind.
func KindFromDir(dir string) (Kind, bool) {
	k := Kind(strings.ReplaceAll(dir, "_", " "))
	if k.Valid() {
		return k, true
	}
	return "", false
}
