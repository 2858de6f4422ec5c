package lesson

import "strings"

const CurrentCatalogVersion = "1"

var SupportedCatalogVersions = []string{CurrentCatalogVersion}

func IsSupportedCatalogVersion(v string) bool {
	for _, s := range SupportedCatalogVersions {
		if v == s {
			return true
		}
	}
	return false
}

func SupportedCatalogVersionsCSV() string {
	return strings.Join(SupportedCatalogVersions, ", ")
}
