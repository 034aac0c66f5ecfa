// Package hierarchy holds the immutable authority tree NDMA -> PDMA -> District.
// It is built once at start-up and shared read-only by every engine.
package hierarchy

import (
	"fmt"
	"sort"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

// Directory - неизменяемое дерево органов управления
type Directory struct {
	byID      map[models.AuthorityID]models.Authority
	children  map[models.AuthorityID][]models.AuthorityID
	provinces map[int]models.AuthorityID
	districts map[[2]int]models.AuthorityID
	ordered   []models.Authority
}

// New validates the authorities and builds the directory.
// Rules: exactly one NDMA; every PDMA hangs off NDMA; every district hangs off its province's PDMA.
func New(authorities []models.Authority) (*Directory, error) {
	d := &Directory{
		byID:      make(map[models.AuthorityID]models.Authority, len(authorities)),
		children:  make(map[models.AuthorityID][]models.AuthorityID),
		provinces: make(map[int]models.AuthorityID),
		districts: make(map[[2]int]models.AuthorityID),
	}

	roots := 0
	for _, a := range authorities {
		if a.ID != a.CanonicalID() {
			return nil, fmt.Errorf("authority %q: id does not match tier/province/district", a.ID)
		}
		if _, dup := d.byID[a.ID]; dup {
			return nil, fmt.Errorf("authority %q declared twice", a.ID)
		}
		switch a.Tier {
		case models.TierNDMA:
			roots++
			a.ParentID = ""
		case models.TierPDMA:
			a.ParentID = models.NDMAID
			d.provinces[a.ProvinceID] = a.ID
		case models.TierDistrict:
			a.ParentID = models.PDMAID(a.ProvinceID)
			d.districts[[2]int{a.ProvinceID, a.DistrictID}] = a.ID
		default:
			return nil, fmt.Errorf("authority %q: unknown tier %q", a.ID, a.Tier)
		}
		d.byID[a.ID] = a
	}
	if roots != 1 {
		return nil, fmt.Errorf("expected exactly one NDMA, got %d", roots)
	}

	for _, a := range d.byID {
		if a.ParentID == "" {
			continue
		}
		if _, ok := d.byID[a.ParentID]; !ok {
			return nil, fmt.Errorf("authority %q: parent %q is not declared", a.ID, a.ParentID)
		}
		d.children[a.ParentID] = append(d.children[a.ParentID], a.ID)
	}
	for parent := range d.children {
		sort.Slice(d.children[parent], func(i, j int) bool { return d.children[parent][i] < d.children[parent][j] })
	}

	d.ordered = make([]models.Authority, 0, len(d.byID))
	for _, a := range d.byID {
		d.ordered = append(d.ordered, a)
	}
	sort.Slice(d.ordered, func(i, j int) bool { return less(d.ordered[i], d.ordered[j]) })
	return d, nil
}

func less(a, b models.Authority) bool {
	if a.ProvinceID != b.ProvinceID {
		return a.ProvinceID < b.ProvinceID
	}
	if a.DistrictID != b.DistrictID {
		return a.DistrictID < b.DistrictID
	}
	return a.ID < b.ID
}

// Get returns the authority or models.ErrNotFound.
func (d *Directory) Get(id models.AuthorityID) (models.Authority, error) {
	a, ok := d.byID[id]
	if !ok {
		return models.Authority{}, fmt.Errorf("authority %q: %w", id, models.ErrNotFound)
	}
	return a, nil
}

// Root returns the NDMA.
func (d *Directory) Root() models.Authority {
	return d.byID[models.NDMAID]
}

// Parent returns the direct parent. NDMA has none.
func (d *Directory) Parent(id models.AuthorityID) (models.Authority, bool, error) {
	a, err := d.Get(id)
	if err != nil {
		return models.Authority{}, false, err
	}
	if a.ParentID == "" {
		return models.Authority{}, false, nil
	}
	return d.byID[a.ParentID], true, nil
}

// Children returns the direct children sorted by id.
func (d *Directory) Children(id models.AuthorityID) ([]models.Authority, error) {
	if _, err := d.Get(id); err != nil {
		return nil, err
	}
	out := make([]models.Authority, 0, len(d.children[id]))
	for _, child := range d.children[id] {
		out = append(out, d.byID[child])
	}
	return out, nil
}

// IsParentOf reports whether parent is exactly one tier above child.
func (d *Directory) IsParentOf(parent, child models.AuthorityID) bool {
	c, ok := d.byID[child]
	return ok && c.ParentID != "" && c.ParentID == parent
}

// Province returns the PDMA of a province.
func (d *Directory) Province(provinceID int) (models.Authority, error) {
	id, ok := d.provinces[provinceID]
	if !ok {
		return models.Authority{}, fmt.Errorf("province %d: %w", provinceID, models.ErrNotFound)
	}
	return d.byID[id], nil
}

// District returns the district authority, which must belong to the given province.
func (d *Directory) District(provinceID, districtID int) (models.Authority, error) {
	id, ok := d.districts[[2]int{provinceID, districtID}]
	if !ok {
		return models.Authority{}, fmt.Errorf("district %d in province %d: %w", districtID, provinceID, models.ErrNotFound)
	}
	return d.byID[id], nil
}

// All returns every authority ordered by province, then district.
func (d *Directory) All() []models.Authority {
	out := make([]models.Authority, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Contains reports whether descendant lies in the subtree rooted at ancestor.
// An authority contains itself.
func (d *Directory) Contains(ancestor, descendant models.AuthorityID) bool {
	for id := descendant; id != ""; {
		a, ok := d.byID[id]
		if !ok {
			return false
		}
		if a.ID == ancestor {
			return true
		}
		id = a.ParentID
	}
	return false
}
