package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier - уровень в иерархии органов управления
type Tier string

const (
	TierNDMA     Tier = "ndma"
	TierPDMA     Tier = "pdma"
	TierDistrict Tier = "district"
)

// AuthorityID is the canonical identifier derived from (tier, province, district):
// "ndma", "pdma:<province>", "district:<province>:<district>".
type AuthorityID string

// NDMAID - единственный корневой орган
const NDMAID AuthorityID = "ndma"

// PDMAID returns the identifier of the provincial authority.
func PDMAID(provinceID int) AuthorityID {
	return AuthorityID(fmt.Sprintf("pdma:%d", provinceID))
}

// DistrictAuthorityID returns the identifier of a district authority.
func DistrictAuthorityID(provinceID, districtID int) AuthorityID {
	return AuthorityID(fmt.Sprintf("district:%d:%d", provinceID, districtID))
}

// Authority - узел строгого дерева NDMA -> PDMA -> District
type Authority struct {
	ID         AuthorityID `json:"id"`
	Tier       Tier        `json:"tier"`
	ProvinceID int         `json:"provinceId,omitempty"`
	DistrictID int         `json:"districtId,omitempty"`
	Name       string      `json:"name"`
	ParentID   AuthorityID `json:"parentId,omitempty"`
}

// ParseAuthorityID splits an identifier into its identity triple.
func ParseAuthorityID(raw string) (Tier, int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(raw)), ":")
	switch {
	case len(parts) == 1 && parts[0] == string(TierNDMA):
		return TierNDMA, 0, 0, nil
	case len(parts) == 2 && parts[0] == string(TierPDMA):
		province, err := strconv.Atoi(parts[1])
		if err != nil || province <= 0 {
			return "", 0, 0, fmt.Errorf("invalid province in authority id %q", raw)
		}
		return TierPDMA, province, 0, nil
	case len(parts) == 3 && parts[0] == string(TierDistrict):
		province, err := strconv.Atoi(parts[1])
		if err != nil || province <= 0 {
			return "", 0, 0, fmt.Errorf("invalid province in authority id %q", raw)
		}
		district, err := strconv.Atoi(parts[2])
		if err != nil || district <= 0 {
			return "", 0, 0, fmt.Errorf("invalid district in authority id %q", raw)
		}
		return TierDistrict, province, district, nil
	}
	return "", 0, 0, fmt.Errorf("malformed authority id %q", raw)
}

// CanonicalID recomputes the identifier from the identity triple.
func (a Authority) CanonicalID() AuthorityID {
	switch a.Tier {
	case TierNDMA:
		return NDMAID
	case TierPDMA:
		return PDMAID(a.ProvinceID)
	case TierDistrict:
		return DistrictAuthorityID(a.ProvinceID, a.DistrictID)
	}
	return ""
}

// Covers reports whether a case filed in (provinceID, districtID) falls under this authority.
func (a Authority) Covers(provinceID, districtID int) bool {
	switch a.Tier {
	case TierNDMA:
		return true
	case TierPDMA:
		return a.ProvinceID == provinceID
	case TierDistrict:
		return a.ProvinceID == provinceID && a.DistrictID == districtID
	}
	return false
}
