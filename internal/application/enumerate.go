package application

import (
	"fmt"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/rs/zerolog"
)

const (
	fieldExtension   = "extension"
	fieldName        = "name"
	fieldDescription = "description"
)

// EnumerateAssociations walks FileAssociations:file.<N> for N = 1, 2, ... and
// hands each record to visit before reading the next one. The first missing
// extension ends the walk. An extension without a name ends it with
// ErrMissingRequiredField. The count of visited records is returned either way.
func EnumerateAssociations(settings domain.Settings, logger zerolog.Logger, visit func(domain.AssociationRecord)) (int, error) {
	if settings == nil {
		return 0, nil
	}

	count := 0
	for index := 1; ; index++ {
		extension, ok := settings.Lookup(domain.AssociationKey(index, fieldExtension))
		if !ok {
			return count, nil
		}

		name, ok := settings.Lookup(domain.AssociationKey(index, fieldName))
		if !ok {
			err := fmt.Errorf("file.%d.%s for extension %s: %w", index, fieldName, extension, domain.ErrMissingRequiredField)
			logger.Error().Err(err).Int("index", index).Str("extension", extension).Msg("name not specified for extension")
			return count, err
		}

		record := domain.AssociationRecord{
			Index:       index,
			Extension:   extension,
			DisplayName: name,
			Settings:    settings,
		}
		if description, ok := settings.Lookup(domain.AssociationKey(index, fieldDescription)); ok {
			record.Description = &description
		} else {
			logger.Warn().Int("index", index).Str("extension", extension).Msg("description not specified for extension")
		}

		visit(record)
		count++
	}
}
