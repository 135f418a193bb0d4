package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MKhiriev/passwordless-vault/models"
)

func TestEncryptFile_RoundTrip(t *testing.T) {
	dek, err := GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	content := []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD}

	blob, meta, err := EncryptFile(dek, content, "secret.bin", "application/x-binary")
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}
	if meta.FileName != "secret.bin" || meta.MimeType != "application/x-binary" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.OriginalSize != int64(len(content)) {
		t.Fatalf("OriginalSize = %d, want %d", meta.OriginalSize, len(content))
	}

	plaintext, err := DecryptFile(dek, blob)
	if err != nil {
		t.Fatalf("DecryptFile error: %v", err)
	}
	if !bytes.Equal(plaintext, content) {
		t.Fatalf("round trip mismatch: got %v, want %v", plaintext, content)
	}
}

func TestEncryptFile_EmptyMimeFallsBackToDefault(t *testing.T) {
	dek, err := GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	_, meta, err := EncryptFile(dek, []byte("payload"), "notes.txt", "")
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}
	if meta.MimeType != models.DefaultMimeType {
		t.Fatalf("MimeType = %q, want %q", meta.MimeType, models.DefaultMimeType)
	}
}

func TestEncryptFile_RejectsOversizedInput(t *testing.T) {
	dek, err := GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	oversized := make([]byte, MaxFileSize+1)

	_, _, err = EncryptFile(dek, oversized, "huge.bin", "")
	var tooLarge ErrFileTooLarge
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if tooLarge.Size != MaxFileSize+1 || tooLarge.Limit != MaxFileSize {
		t.Fatalf("unexpected ErrFileTooLarge fields: %+v", tooLarge)
	}
}

func TestDecryptFile_TamperedBlobFails(t *testing.T) {
	dek, err := GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	blob, _, err := EncryptFile(dek, []byte("payload"), "f.txt", "")
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}

	tampered := bytes.Clone(blob)
	tampered[len(tampered)-1] ^= 0xFF

	if _, err := DecryptFile(dek, tampered); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}
