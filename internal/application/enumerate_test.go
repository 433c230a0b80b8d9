package application

import (
	"testing"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, settings domain.Settings) ([]domain.AssociationRecord, int, error) {
	t.Helper()

	var records []domain.AssociationRecord
	n, err := EnumerateAssociations(settings, testlog.New(t), func(r domain.AssociationRecord) {
		records = append(records, r)
	})
	return records, n, err
}

func TestEnumerateStopsAtFirstMissingExtension(t *testing.T) {
	t.Parallel()

	settings := domain.MapSettings{
		"FileAssociations:file.1.extension": ".one",
		"FileAssociations:file.1.name":      "App.One",
		"FileAssociations:file.2.extension": ".two",
		"FileAssociations:file.2.name":      "App.Two",
		"FileAssociations:file.4.extension": ".four",
		"FileAssociations:file.4.name":      "App.Four",
	}

	records, n, err := collect(t, settings)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, records, 2)
	assert.Equal(t, ".one", records[0].Extension)
	assert.Equal(t, 1, records[0].Index)
	assert.Equal(t, ".two", records[1].Extension)
}

func TestEnumerateMissingNameHaltsAfterPreviousRecords(t *testing.T) {
	t.Parallel()

	settings := domain.MapSettings{
		"FileAssociations:file.1.extension": ".one",
		"FileAssociations:file.1.name":      "App.One",
		"FileAssociations:file.2.extension": ".two",
		"FileAssociations:file.2.name":      "App.Two",
		"FileAssociations:file.3.extension": ".three",
		"FileAssociations:file.4.extension": ".four",
		"FileAssociations:file.4.name":      "App.Four",
	}

	records, n, err := collect(t, settings)
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), ".three")
	assert.Equal(t, 2, n)
	assert.Len(t, records, 2)
}

func TestEnumerateMissingDescriptionIsAbsent(t *testing.T) {
	t.Parallel()

	settings := domain.MapSettings{
		"FileAssociations:file.1.extension":   ".one",
		"FileAssociations:file.1.name":        "App.One",
		"FileAssociations:file.1.description": "One file",
		"FileAssociations:file.2.extension":   ".two",
		"FileAssociations:file.2.name":        "App.Two",
	}

	records, _, err := collect(t, settings)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.True(t, records[0].HasDescription())
	assert.Equal(t, "One file", *records[0].Description)
	assert.False(t, records[1].HasDescription())
	assert.Equal(t, settings, records[1].Settings)
}

func TestEnumerateEmptySettings(t *testing.T) {
	t.Parallel()

	records, n, err := collect(t, domain.MapSettings{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, records)
}
