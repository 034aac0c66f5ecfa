package hierarchy

import (
	"testing"

	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirectory_Tree(t *testing.T) {
	d := MustDefault()

	assert.Equal(t, models.NDMAID, d.Root().ID)

	pdma, err := d.Province(1)
	require.NoError(t, err)
	assert.Equal(t, models.PDMAID(1), pdma.ID)
	assert.Equal(t, models.NDMAID, pdma.ParentID)

	district, err := d.District(1, 5)
	require.NoError(t, err)
	assert.Equal(t, models.AuthorityID("district:1:5"), district.ID)

	parent, ok, err := d.Parent(district.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, pdma.ID, parent.ID)

	_, ok, err = d.Parent(models.NDMAID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, d.IsParentOf(pdma.ID, district.ID))
	assert.False(t, d.IsParentOf(models.NDMAID, district.ID))
	assert.False(t, d.IsParentOf(district.ID, pdma.ID))
}

func TestDirectory_DistrictMustBelongToProvince(t *testing.T) {
	d := MustDefault()

	_, err := d.District(2, 5)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = d.Get("pdma:99")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDirectory_Children(t *testing.T) {
	d := MustDefault()

	provinces, err := d.Children(models.NDMAID)
	require.NoError(t, err)
	assert.Len(t, provinces, 6)

	districts, err := d.Children(models.PDMAID(5))
	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, "Gilgit", districts[0].Name)
}

func TestNew_RejectsBrokenTrees(t *testing.T) {
	ndma := models.Authority{ID: models.NDMAID, Tier: models.TierNDMA}
	pdma := models.Authority{ID: models.PDMAID(1), Tier: models.TierPDMA, ProvinceID: 1}

	testCases := []struct {
		name        string
		authorities []models.Authority
	}{
		{"no root", []models.Authority{pdma}},
		{"two roots", []models.Authority{ndma, ndma}},
		{"orphan district", []models.Authority{ndma, {ID: models.DistrictAuthorityID(2, 3), Tier: models.TierDistrict, ProvinceID: 2, DistrictID: 3}}},
		{"id mismatch", []models.Authority{ndma, {ID: "pdma:7", Tier: models.TierPDMA, ProvinceID: 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.authorities)
			assert.Error(t, err)
		})
	}
}

func TestDirectory_Contains(t *testing.T) {
	d := MustDefault()
	lahore := models.DistrictAuthorityID(1, 1)

	assert.True(t, d.Contains(models.NDMAID, lahore))
	assert.True(t, d.Contains(models.PDMAID(1), lahore))
	assert.True(t, d.Contains(lahore, lahore))
	assert.False(t, d.Contains(models.PDMAID(2), lahore))
	assert.False(t, d.Contains(lahore, models.PDMAID(1)))
	assert.False(t, d.Contains(models.NDMAID, "district:9:99"))
}
