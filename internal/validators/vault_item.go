package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/passwordless-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldItemID targets the client-generated identifier of a vault item.
	FieldItemID = "id"

	// FieldItemType targets the semantic item type field
	// (password, note, secret, or file).
	FieldItemType = "type"

	// FieldTitle targets the (encrypted, pre-serialization) title field.
	FieldTitle = "title"

	// FieldContent targets the item's content payload.
	FieldContent = "content"

	// FieldFileReference targets the FileID/FileName/FileSize/MimeType
	// group carried by file-type items.
	FieldFileReference = "file_reference"

	// FieldDocumentItems targets the Items slice of a VaultDocument.
	FieldDocumentItems = "items"

	// FieldDocumentVersion targets the Version field of a VaultDocument.
	FieldDocumentVersion = "version"
)

// allowedItemTypes is the exhaustive set of ItemType values accepted by
// the validator. Any ItemType not present here is rejected.
var allowedItemTypes = []models.ItemType{
	models.ItemTypePassword,
	models.ItemTypeNote,
	models.ItemTypeSecret,
	models.ItemTypeFile,
}

// VaultItemValidator implements [Validator] for the vault's own domain
// models: VaultItem and VaultDocument. It mirrors the field-level scoping
// pattern used across this package so the service layer can validate only
// the fields relevant to a given transition (e.g. an update that leaves
// FileID untouched need not re-check it).
type VaultItemValidator struct{}

// NewVaultItemValidator constructs a new VaultItemValidator and returns
// it as the Validator interface.
func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of
// models.VaultItem and models.VaultDocument are accepted.
//
// Returns ErrUnsupportedType if obj does not match either model.
func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateVaultItem(ctx, value, fields...)
	case *models.VaultItem:
		return v.validateVaultItem(ctx, *value, fields...)

	case models.VaultDocument:
		return v.validateVaultDocument(ctx, value, fields...)
	case *models.VaultDocument:
		return v.validateVaultDocument(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidItemType(t models.ItemType) bool {
	for _, allowed := range allowedItemTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// validateVaultItem validates a single VaultItem.
//
// Default validated fields (when none specified): ID, Type, Title,
// Content, FileReference.
//
// FieldContent is only enforced for non-file item types — file items
// carry their payload in the files KV namespace, not Content.
// FieldFileReference enforces that file-type items carry a complete
// FileID/FileName/FileSize/MimeType group, and that non-file items carry
// none of them.
func (v *VaultItemValidator) validateVaultItem(ctx context.Context, item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldItemType, FieldTitle, FieldContent, FieldFileReference}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID == "" {
				return ErrEmptyItemID
			}
		case FieldItemType:
			if !isValidItemType(item.Type) {
				return ErrInvalidItemType
			}
		case FieldTitle:
			if item.Title == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if item.Type != models.ItemTypeFile && item.Content == "" {
				return ErrEmptyContent
			}
		case FieldFileReference:
			if err := validateFileReference(item); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFileReference(item models.VaultItem) error {
	hasAny := item.FileID != nil || item.FileName != nil || item.FileSize != nil || item.MimeType != nil

	if item.Type != models.ItemTypeFile {
		if hasAny {
			return ErrFileFieldsOnNonFileItem
		}
		return nil
	}

	if item.FileID == nil || item.FileName == nil || item.FileSize == nil || item.MimeType == nil {
		return ErrIncompleteFileReference
	}
	if *item.FileSize < 0 {
		return ErrNegativeFileSize
	}
	return nil
}

// validateVaultDocument validates a VaultDocument's structural integrity:
// a positive version and a set of items with unique, individually-valid
// IDs. Default validated fields: Version, Items.
func (v *VaultItemValidator) validateVaultDocument(ctx context.Context, doc models.VaultDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDocumentVersion, FieldDocumentItems}
	}

	for _, f := range fields {
		switch f {
		case FieldDocumentVersion:
			if doc.Version == 0 {
				return ErrInvalidDocumentVersion
			}
		case FieldDocumentItems:
			seen := make(map[string]bool, len(doc.Items))
			for i, item := range doc.Items {
				if err := v.validateVaultItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at item index %d: %w", i, err)
				}
				if seen[item.ID] {
					return fmt.Errorf("validation error at item index %d: %w", i, ErrDuplicateItemID)
				}
				seen[item.ID] = true
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
