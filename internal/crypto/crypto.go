package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

const (
	// keyLen — длина ключа для AES‑256 (в байтах).
	keyLen = 32
	// saltLen — длина per-install соли для KDF.
	saltLen = 16
)

// ErrDecryptionFailed возвращается, когда GCM не подтвердил подлинность:
// неверная кодовая фраза либо повреждённый конверт.
var ErrDecryptionFailed = errors.New("decryption failed: wrong passphrase or corrupted data")

// Envelope — результат одного вызова Encrypt: nonce и шифртекст.
// Nonce не секретен и хранится рядом с шифртекстом; защищаемое свойство —
// его неповторяемость, а не скрытность.
type Envelope struct {
	Nonce   []byte
	Content []byte
}

// DeriveKey превращает кодовую фразу в ключ AES‑256 через argon2id
// с per-install солью. Сырая фраза ключом не используется.
func DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, keyLen)
}

// LoadOrCreateSalt загружает существующую соль установки или создаёт новую
// случайную. Соль не секретна, но обязана быть стабильной между сессиями.
func LoadOrCreateSalt(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("empty salt file path")
	}
	if b, err := os.ReadFile(path); err == nil {
		if len(b) != saltLen {
			return nil, errors.New("invalid salt length")
		}
		return b, nil
	}
	// создаём новую соль
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	// записываем с ограниченными правами доступа
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, err
	}
	return salt, nil
}

// Encrypt шифрует данные plain с помощью AES‑GCM и заданного ключа.
// Для каждого вызова генерируется свежий случайный nonce, поэтому два
// шифрования одинакового текста дают разные конверты.
func Encrypt(plain []byte, key []byte) (Envelope, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return Envelope{}, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return Envelope{}, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, err
	}
	out := gcm.Seal(nil, nonce, plain, nil)
	return Envelope{Nonce: nonce, Content: out}, nil
}

// Decrypt расшифровывает конверт тем же ключом. Детерминирован для
// одинаковых входов; при неверном ключе или испорченных данных возвращает
// ErrDecryptionFailed, а не мусорный текст.
func Decrypt(env Envelope, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}
	plain, err := gcm.Open(nil, env.Nonce, env.Content, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}
