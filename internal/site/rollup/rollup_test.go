package rollup

import (
	"testing"

	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	office = domain.UseType{ID: 54, Name: "Office"}
	home   = domain.UseType{ID: 2, Name: "Home"}
	retail = domain.UseType{ID: 63, Name: "Retail Store"}
)

func use(id int64, typ domain.UseType, size int64) domain.SiteUse {
	return domain.SiteUse{ID: id, SiteID: 1, SizeSqft: size, UseTypeID: typ.ID, UseType: typ}
}

func site(uses ...domain.SiteUse) domain.Site {
	return domain.Site{ID: 1, Name: "Santa's Workshop", State: "AK", SiteUses: uses}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(site())

	assert.Equal(t, int64(0), got.TotalSize)
	assert.Nil(t, got.PrimaryType)
	assert.Equal(t, int64(1), got.ID)
}

func TestAggregateSumsPerType(t *testing.T) {
	got := Aggregate(site(
		use(1, office, 2000),
		use(2, home, 900),
		use(3, office, 5000),
	))

	assert.Equal(t, int64(7900), got.TotalSize)
	require.NotNil(t, got.PrimaryType)
	assert.Equal(t, office, *got.PrimaryType)
}

func TestAggregateTieKeepsFirstLeader(t *testing.T) {
	cases := []struct {
		name string
		uses []domain.SiteUse
		want domain.UseType
	}{
		{
			name: "office first",
			uses: []domain.SiteUse{use(1, office, 5000), use(2, home, 5000)},
			want: office,
		},
		{
			name: "home first",
			uses: []domain.SiteUse{use(1, home, 5000), use(2, office, 5000)},
			want: home,
		},
		{
			name: "same sqft",
			uses: []domain.SiteUse{use(1, office, 2000), use(2, home, 2000)},
			want: office,
		},
		{
			name: "overtaken then tied",
			uses: []domain.SiteUse{use(1, office, 1000), use(2, home, 1500), use(3, office, 500)},
			want: home,
		},
		{
			name: "overtaken then passed",
			uses: []domain.SiteUse{use(1, office, 1000), use(2, home, 1500), use(3, office, 501)},
			want: office,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(site(tc.uses...))
			require.NotNil(t, got.PrimaryType)
			assert.Equal(t, tc.want, *got.PrimaryType)
		})
	}
}

func TestAggregateZeroSizedUsesLeavePrimaryUnset(t *testing.T) {
	got := Aggregate(site(use(1, office, 0), use(2, home, 0)))

	assert.Equal(t, int64(0), got.TotalSize)
	assert.Nil(t, got.PrimaryType)
}

func TestAggregateTotalIsOrderIndependent(t *testing.T) {
	forward := []domain.SiteUse{use(1, office, 300), use(2, retail, 1200), use(3, home, 45)}
	reversed := []domain.SiteUse{forward[2], forward[1], forward[0]}

	assert.Equal(t, Aggregate(site(forward...)).TotalSize, Aggregate(site(reversed...)).TotalSize)
	assert.Equal(t, int64(1545), Aggregate(site(forward...)).TotalSize)
}

func TestAggregatePrimaryComesFromInput(t *testing.T) {
	uses := []domain.SiteUse{use(1, retail, 10), use(2, home, 20), use(3, retail, 15)}
	got := Aggregate(site(uses...))

	require.NotNil(t, got.PrimaryType)
	assert.Contains(t, []domain.UseType{retail, home}, *got.PrimaryType)
	assert.Equal(t, retail, *got.PrimaryType)
}

func TestAggregateIsIdempotentAndDoesNotMutate(t *testing.T) {
	uses := []domain.SiteUse{use(1, office, 2000), use(2, home, 900), use(3, office, 5000)}
	snapshot := append([]domain.SiteUse(nil), uses...)
	input := site(uses...)

	first := Aggregate(input)
	second := Aggregate(input)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, uses)

	first.PrimaryType.Name = "changed"
	assert.Equal(t, "Office", uses[0].UseType.Name)
}

func TestAggregateAllPreservesOrder(t *testing.T) {
	sites := []domain.Site{
		{ID: 6, SiteUses: []domain.SiteUse{use(1, retail, 5)}},
		{ID: 2},
		{ID: 4, SiteUses: []domain.SiteUse{use(2, office, 7)}},
	}

	got := AggregateAll(sites)

	require.Len(t, got, 3)
	assert.Equal(t, []int64{6, 2, 4}, []int64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, int64(5), got[0].TotalSize)
	assert.Nil(t, got[1].PrimaryType)
	assert.Empty(t, AggregateAll(nil))
}
