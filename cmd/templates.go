package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gaurav-prasanna/charsheet/storage"
	"github.com/spf13/cobra"
)

var flagFolder string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the templates in a Google Drive folder",
	Long: `Templates lists the files of a shared Drive folder so their ids can be
passed to --template.

Example:
  charsheet templates --folder https://drive.google.com/drive/folders/<id>`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.Flags().StringVar(&flagFolder, "folder", "", "Drive folder URL or id")
	templatesCmd.MarkFlagRequired("folder")
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	folderID := storage.FolderIDFromURL(flagFolder)
	if folderID == "" {
		folderID = storage.FileIDFromLink(flagFolder)
	}
	if folderID == "" {
		return fmt.Errorf("invalid folder: %s", flagFolder)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}
	if a.drive == nil {
		return errors.New("listing templates needs Drive credentials: set credentials_file or [gcp_service_account] in the secrets file")
	}

	files, err := a.drive.ListFolder(ctx, folderID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tTYPE")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.ID, f.MimeType)
	}
	return tw.Flush()
}
