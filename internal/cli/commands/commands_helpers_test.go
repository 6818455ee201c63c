package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"SecretVault/internal/config"
)

// tempConfig собирает конфиг с путями в temp, чтобы артефакты
// (база/соль) не покидали каталог теста.
func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBPath:      filepath.Join(dir, "vault.sqlite"),
		SaltFile:    filepath.Join(dir, "salt.bin"),
		LockMinutes: 30,
	}
}

// withOutCapture подменяет Out на буфер и возвращает напечатанное.
func withOutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withPassphrase подменяет запрос кодовой фразы на фиксированный ответ.
func withPassphrase(t *testing.T, pass string) {
	t.Helper()
	old := PassphraseReader
	PassphraseReader = func(prompt string) (string, error) { return pass, nil }
	t.Cleanup(func() { PassphraseReader = old })
}

// listedID извлекает id из строки листинга вида "- <id>  ...".
func listedID(t *testing.T, out, marker string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "- ") && strings.Contains(line, marker) {
			fields := strings.Fields(line)
			return fields[1]
		}
	}
	t.Fatalf("no listing line with %q in output: %s", marker, out)
	return ""
}
