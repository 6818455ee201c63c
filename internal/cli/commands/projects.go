package commands

import (
	"context"
	"fmt"
	"strings"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type projectsCmd struct{}

func (projectsCmd) Name() string { return "projects" }
func (projectsCmd) Description() string {
	return "Показать все проекты (закреплённые первыми)"
}
func (projectsCmd) Usage() string { return "projects" }

func (projectsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет проектов")
		return nil
	}
	for _, p := range list {
		pin := ""
		if p.IsPinned {
			pin = " [pinned]"
		}
		tags := ""
		if len(p.Tags) > 0 {
			tags = "  tags=" + strings.Join(p.Tags, ",")
		}
		fmt.Fprintf(Out, "- %s  name=%s%s%s\n", p.ID, p.Name, pin, tags)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(projectsCmd{}) }
