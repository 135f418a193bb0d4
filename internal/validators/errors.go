package validators

import "errors"

var (
	// ErrUnsupportedType is returned when a value of an unsupported type
	// is passed to a validator that cannot handle it.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a field name provided for validation
	// does not match any known or expected field.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrEmptyItemID is returned when a vault item is missing its
	// client-generated identifier.
	ErrEmptyItemID = errors.New("item id is required")

	// ErrInvalidItemType is returned when a vault item's Type does not
	// match any of [models.ItemTypePassword], [models.ItemTypeNote],
	// [models.ItemTypeSecret], or [models.ItemTypeFile].
	ErrInvalidItemType = errors.New("invalid item type")

	// ErrEmptyTitle is returned when a vault item has no title.
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyContent is returned when a password, note, or secret item
	// carries no content.
	ErrEmptyContent = errors.New("content is required for this item type")

	// ErrIncompleteFileReference is returned when a file-type item is
	// missing one of FileID, FileName, FileSize, or MimeType.
	ErrIncompleteFileReference = errors.New("file item is missing file metadata")

	// ErrFileFieldsOnNonFileItem is returned when a non-file item carries
	// file-reference fields, which would otherwise silently orphan a blob
	// in the files namespace on deletion.
	ErrFileFieldsOnNonFileItem = errors.New("file metadata is only valid on file items")

	// ErrNegativeFileSize is returned when a file item's FileSize is
	// negative.
	ErrNegativeFileSize = errors.New("file size cannot be negative")

	// ErrInvalidDocumentVersion is returned when a VaultDocument's Version
	// is zero or unset.
	ErrInvalidDocumentVersion = errors.New("invalid document version")

	// ErrDuplicateItemID is returned when a VaultDocument contains two
	// items sharing the same ID.
	ErrDuplicateItemID = errors.New("duplicate item id in document")
)
