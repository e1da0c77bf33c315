package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testDepartment() Department {
	university := University{Name: "Silesian University of Technology", Abbr: "SUT"}
	faculty := Faculty{Name: "Faculty of Chemistry", Abbr: "FCh", Ancestor: &university}
	return Department{Name: "Department of Physical Chemistry", Abbr: "DPCh", Ancestor: &faculty}
}

func TestUnits(t *testing.T) {
	t.Run(`FullName check`, func(t *testing.T) {
		department := testDepartment()
		require.Equal(t,
			"Department of Physical Chemistry, Faculty of Chemistry, Silesian University of Technology",
			department.String())
		require.Equal(t, "Faculty of Chemistry, Silesian University of Technology", department.Faculty().String())
		require.Equal(t, "Silesian University of Technology", department.University().String())
		require.Equal(t, "Department of Physical Chemistry | Faculty of Chemistry | Silesian University of Technology",
			UnitFullName(department, " | "))
	})

	t.Run(`FullAbbr check`, func(t *testing.T) {
		department := testDepartment()
		require.Equal(t, "DPCh/FCh/SUT", department.FullAbbr())
		require.Equal(t, "FCh/SUT", UnitFullAbbr(*department.Faculty(), FullAbbrSep))
		require.Equal(t, "SUT", UnitFullAbbr(*department.University(), FullAbbrSep))
	})

	t.Run(`Ancestors check`, func(t *testing.T) {
		department := testDepartment()
		require.Len(t, Ancestors(department, true), 3)
		ancestors := Ancestors(department, false)
		require.Len(t, ancestors, 2)
		require.Equal(t, "FCh", ancestors[0].UnitAbbr())
		require.Equal(t, "SUT", ancestors[1].UnitAbbr())
		require.Empty(t, Ancestors(University{Name: "U", Abbr: "U"}, false))
	})

	t.Run(`Ancestors without loaded parent`, func(t *testing.T) {
		department := Department{Name: "Department", Abbr: "D", AncestorID: "faculty-id"}
		require.Equal(t, "Department", department.String())
		require.Nil(t, department.University())
	})

	t.Run(`Validate check`, func(t *testing.T) {
		require.NoError(t, University{Name: "U", Abbr: "U"}.Validate())
		require.Error(t, University{Name: "U"}.Validate())
		require.Error(t, Faculty{Name: "F", Abbr: "F"}.Validate())
		require.NoError(t, Department{Name: "D", Abbr: "D", AncestorID: "f"}.Validate())
	})
}
