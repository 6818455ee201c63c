package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"SecretVault/internal/config"
	"SecretVault/internal/crypto"
	"SecretVault/internal/session"
)

// PassphraseReader запрашивает кодовую фразу. В тестах переназначается,
// чтобы не зависеть от терминала.
var PassphraseReader = readPassphrase

func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(Out, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(Out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	// stdin — не терминал (пайп): читаем строку как есть
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// unlockSession запрашивает кодовую фразу и открывает сессию на время
// выполнения команды. Фраза и ключ живут только в памяти процесса.
func unlockSession(cfg *config.Config) (*session.Session, error) {
	salt, err := crypto.LoadOrCreateSalt(cfg.SaltFile)
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}
	pass, err := PassphraseReader("Passphrase: ")
	if err != nil {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	sess := session.New(cfg.LockTimeout())
	if err := sess.Unlock(pass, salt); err != nil {
		return nil, err
	}
	return sess, nil
}
