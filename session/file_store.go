package session

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedMagic = "TFE1"
	saltLength  = 16
	nonceLength = 24
	keyLength   = 32
)

var _ KV = (*FileStore)(nil)

// FileStore is a durable KV kept as a single JSON document on disk. When a passphrase is
// configured the document is sealed with secretbox under an argon2id derived key.
type FileStore struct {
	path       string
	passphrase []byte
	mu         sync.Mutex
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithPassphrase enables at-rest encryption of the store file.
func WithPassphrase(passphrase string) FileStoreOption {
	return func(fs *FileStore) {
		if passphrase != "" {
			fs.passphrase = []byte(passphrase)
		}
	}
}

// NewFileStore creates a store at path. The parent directory is created on first write.
func NewFileStore(path string, options ...FileStoreOption) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("[NewFileStore] path is required")
	}
	fs := &FileStore{path: path}
	for _, opt := range options {
		opt(fs)
	}
	return fs, nil
}

func (fs *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (fs *FileStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.load()
	if err != nil {
		return err
	}
	values[key] = value
	return fs.save(values)
}

func (fs *FileStore) Delete(_ context.Context, keys ...string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.load()
	if err != nil {
		return err
	}
	changed := false
	for _, key := range keys {
		if _, ok := values[key]; ok {
			delete(values, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return fs.save(values)
}

func (fs *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[FileStore] reading %s: %w", fs.path, err)
	}
	if len(data) == 0 {
		return values, nil
	}

	if bytes.HasPrefix(data, []byte(sealedMagic)) {
		if data, err = fs.open(data); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("[FileStore] decoding %s: %w", fs.path, err)
	}
	return values, nil
}

func (fs *FileStore) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("[FileStore] encoding: %w", err)
	}
	if fs.passphrase != nil {
		if data, err = fs.seal(data); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return fmt.Errorf("[FileStore] creating directory: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("[FileStore] writing %s: %w", tmp, err)
	}
	return os.Rename(tmp, fs.path)
}

func (fs *FileStore) deriveKey(salt []byte) *[keyLength]byte {
	var key [keyLength]byte
	copy(key[:], argon2.IDKey(fs.passphrase, salt, 1, 64*1024, 4, keyLength))
	return &key
}

func (fs *FileStore) seal(plain []byte) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("[FileStore] generating salt: %w", err)
	}
	var nonce [nonceLength]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("[FileStore] generating nonce: %w", err)
	}

	out := make([]byte, 0, len(sealedMagic)+saltLength+nonceLength+len(plain)+secretbox.Overhead)
	out = append(out, sealedMagic...)
	out = append(out, salt...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plain, &nonce, fs.deriveKey(salt)), nil
}

func (fs *FileStore) open(sealed []byte) ([]byte, error) {
	if fs.passphrase == nil {
		return nil, fmt.Errorf("[FileStore] %s is encrypted and no passphrase is configured", fs.path)
	}
	body := sealed[len(sealedMagic):]
	if len(body) < saltLength+nonceLength+secretbox.Overhead {
		return nil, fmt.Errorf("[FileStore] %s is truncated", fs.path)
	}
	salt := body[:saltLength]
	var nonce [nonceLength]byte
	copy(nonce[:], body[saltLength:saltLength+nonceLength])

	plain, ok := secretbox.Open(nil, body[saltLength+nonceLength:], &nonce, fs.deriveKey(salt))
	if !ok {
		return nil, fmt.Errorf("[FileStore] %s could not be decrypted", fs.path)
	}
	return plain, nil
}
