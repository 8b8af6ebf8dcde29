package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/keep/pkg/app"
)

type Backup struct {
	// Import loads state from Path, replacing the document. Otherwise the
	// document is exported to Path, or stdout when Path is empty.
	Import bool
	Path   string

	App *app.Service
}

func (n *Backup) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not backup, no app")
	}

	if n.Import {
		if n.Path == "" {
			return errors.New("import requires a file")
		}
		data, err := os.ReadFile(n.Path)
		if err != nil {
			return err
		}
		if err := n.App.ImportReplace(data); err != nil {
			return err
		}
		fmt.Printf("imported %d commitments\n", len(n.App.Doc.Commitments))
		return nil
	}

	data, err := n.App.Export()
	if err != nil {
		return err
	}
	if n.Path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(n.Path, data, 0600); err != nil {
		return err
	}
	fmt.Printf("exported %d commitments to %s\n", len(n.App.Doc.Commitments), n.Path)
	return nil
}
