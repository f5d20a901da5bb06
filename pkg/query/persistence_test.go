package query

import (
	"testing"

	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		item  string
		want  string
	}{
		{
			name:  "simple",
			query: "SELECT r FROM rhq_resource r WHERE r.id = 1",
			item:  "r",
			want:  "SELECT COUNT(r) FROM rhq_resource r WHERE r.id = 1",
		},
		{
			name:  "fetch keywords are dropped",
			query: "SELECT r FROM Resource r LEFT JOIN FETCH r.agent",
			item:  "r",
			want:  "SELECT COUNT(r) FROM Resource r LEFT JOIN  r.agent",
		},
		{
			name:  "multi line select list",
			query: "select\n  r.id,\n  r.name\nfrom rhq_resource r",
			item:  "*",
			want:  "select\n  COUNT(*)\nfrom rhq_resource r",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountQuery(tt.query, tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := CountQuery("DELETE FROM rhq_resource", "*")
	assert.ErrorIs(t, err, ErrIllegalArgument)
}

func TestOrderByFragment(t *testing.T) {
	assert.Equal(t, "", OrderByFragment())
	assert.Equal(t, " ORDER BY name ASC, ctime DESC", OrderByFragment(
		paging.OrderingField{Field: "name", Ordering: paging.OrderingASC},
		paging.OrderingField{Field: "ctime", Ordering: paging.OrderingDESC},
	))
}

func TestSetDataPage(t *testing.T) {
	q := "SELECT * FROM rhq_resource ORDER BY id ASC"

	assert.Equal(t, q, SetDataPage(DialectPostgres, q, paging.Unlimited()))
	assert.Equal(t, q+" LIMIT 10 OFFSET 20", SetDataPage(DialectPostgres, q, paging.New(2, 10)))
	assert.Equal(t, q+" LIMIT 10 OFFSET 7", SetDataPage(DialectH2, q, paging.AtOffset(7, 10)))
	assert.Equal(t, q+" OFFSET 20 ROWS FETCH NEXT 10 ROWS ONLY", SetDataPage(DialectOracle, q, paging.New(2, 10)))
}

func TestNativePaging(t *testing.T) {
	byName := paging.OrderingField{Field: "name", Ordering: paging.OrderingASC}
	q := "SELECT * FROM rhq_resource"

	t.Run("postgres and h2", func(t *testing.T) {
		pc := paging.New(2, 10, byName)
		assert.Equal(t, q+" ORDER BY name ASC LIMIT 10 OFFSET 20", AddPostgresNativePagingSorting(q, pc))
		assert.Equal(t, q+" ORDER BY name ASC LIMIT 10 OFFSET 20", AddH2NativePagingSorting(q, pc))
		assert.Equal(t, q+" ORDER BY name ASC", AddPostgresNativePagingSorting(q, paging.Unlimited(byName)))
	})

	t.Run("oracle", func(t *testing.T) {
		got := AddOracleNativePagingSorting(q, paging.New(2, 10, byName))
		assert.Equal(t, "SELECT outerResults.* FROM ( SELECT innerResults.*, ROWNUM rnum FROM ( "+
			q+" ORDER BY name ASC ) innerResults  WHERE ROWNUM <= 30 ) outerResults  WHERE rnum >= 21", got)
	})

	t.Run("sql server", func(t *testing.T) {
		pc := paging.New(0, 5, paging.OrderingField{Field: "name", Ordering: paging.OrderingDESC})

		got, err := AddSQLServerNativePagingSorting(q, pc, false)
		require.NoError(t, err)
		assert.Equal(t, "SELECT outerResults.* FROM ( "+
			"   SELECT innerResults.*, "+
			"          ROW_NUMBER() OVER( ORDER BY name DESC ) AS rownum "+
			"   FROM ( "+q+" ) AS innerResults "+
			" ) AS outerResults "+
			"WHERE rownum <= 5 AND rownum >= 1", got)
	})

	t.Run("sql server alternate skips sub-selects", func(t *testing.T) {
		pc := paging.New(1, 5, paging.OrderingField{Field: "name", Ordering: paging.OrderingDESC})
		query := "SELECT r.id, (SELECT COUNT(*) FROM rhq_resource c WHERE c.parent_resource_id = r.id) AS children FROM rhq_resource r"

		got, err := AddSQLServerNativePagingSorting(query, pc, true)
		require.NoError(t, err)
		assert.Equal(t, "SELECT singleResults.* FROM ( "+
			"SELECT r.id, (SELECT COUNT(*) FROM rhq_resource c WHERE c.parent_resource_id = r.id) AS children"+
			", ROW_NUMBER() OVER( ORDER BY name DESC ) AS rownum "+
			" FROM rhq_resource r"+
			") AS singleResults WHERE rownum <= 10 AND rownum >= 6", got)

		_, err = AddSQLServerNativePagingSorting("SELECT 1", pc, true)
		assert.ErrorIs(t, err, ErrIllegalArgument)
	})

	t.Run("by dialect", func(t *testing.T) {
		got, err := AddNativePagingSorting(DialectPostgres, q, paging.New(0, 3))
		require.NoError(t, err)
		assert.Equal(t, q+" LIMIT 3 OFFSET 0", got)

		_, err = AddNativePagingSorting(Dialect(42), q, paging.New(0, 3))
		assert.ErrorIs(t, err, ErrIllegalArgument)
	})
}

func TestFindSelectListEndIndex(t *testing.T) {
	i, err := findSelectListEndIndex("SELECT a FROM t")
	require.NoError(t, err)
	assert.Equal(t, 8, i)

	i, err = findSelectListEndIndex("select fromage, (select x from y) from t")
	require.NoError(t, err)
	assert.Equal(t, "select fromage, (select x from y)", "select fromage, (select x from y) from t"[:i])

	for _, q := range []string{
		"select a_from, b from t",
		"select x1from from t",
		"select r.from_date from t",
	} {
		i, err = findSelectListEndIndex(q)
		require.NoError(t, err)
		assert.Equal(t, " from t", q[i:], q)
	}

	_, err = findSelectListEndIndex("select a_from")
	assert.ErrorIs(t, err, ErrIllegalArgument)
}
