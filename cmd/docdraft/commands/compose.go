package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docdraft/internal/composer"
	"docdraft/internal/picker"
)

type composeOptions struct {
	file        string
	title       string
	description string
	faculties   []string
	subjects    []string
	lists       []string
	images      []string
	imageKeys   []string
	cover       string
	dryRun      bool
}

// compose --file <path>: build a draft from flags and submit it.
func composeCmd() *cobra.Command {
	var o composeOptions
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a draft from flags and submit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runPickers(cmd, sess, o); err != nil {
				return err
			}
			if o.title != "" {
				sess.composer.SetTitle(o.title)
			}
			if o.description != "" {
				sess.composer.SetDescription(o.description)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if o.dryRun {
				return enc.Encode(sess.composer.View())
			}

			rec, err := sess.composer.Submit(cmd.Context())
			if err != nil {
				return errors.New(composer.UserMessage(err))
			}
			return enc.Encode(rec)
		},
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "document to upload")
	cmd.Flags().StringVarP(&o.title, "title", "t", "", "document title")
	cmd.Flags().StringVarP(&o.description, "description", "d", "", "document description")
	cmd.Flags().StringSliceVar(&o.faculties, "faculty", nil, "faculty id (repeatable)")
	cmd.Flags().StringSliceVar(&o.subjects, "subject", nil, "subject id (repeatable)")
	cmd.Flags().StringSliceVar(&o.lists, "list", nil, "list id (repeatable)")
	cmd.Flags().StringSliceVar(&o.images, "image", nil, "image URI (repeatable)")
	cmd.Flags().StringSliceVar(&o.imageKeys, "image-key", nil, "media library key to attach as an image (repeatable)")
	cmd.Flags().StringVar(&o.cover, "cover", "", "cover image URI")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "print the draft instead of submitting it")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// runPickers feeds each flag through its picker, the same path an interactive user takes.
func runPickers(cmd *cobra.Command, s *session, o composeOptions) error {
	ctx := cmd.Context()

	if _, err := s.collector.Enter(picker.CategoryFile); err != nil {
		return err
	}
	if out := s.collector.PickFile(ctx, picker.FilesystemDocumentPicker{Path: o.file, Root: s.cfg.Remote.UploadRoot}); out != picker.OutcomeConfirmed {
		return fmt.Errorf("file %q: %s", o.file, out)
	}

	catalogs := []struct {
		cat   picker.Category
		items []string
	}{
		{picker.CategoryFaculties, o.faculties},
		{picker.CategorySubjects, o.subjects},
		{picker.CategoryLists, o.lists},
	}
	for _, c := range catalogs {
		cat, items := c.cat, c.items
		if len(items) == 0 {
			continue
		}
		if _, err := s.collector.Enter(cat); err != nil {
			return err
		}
		if err := s.collector.Confirm(picker.Selection{Category: cat, Items: items}); err != nil {
			s.collector.Cancel(cat)
			return fmt.Errorf("%s: %w", cat, err)
		}
	}

	if len(o.images) > 0 || len(o.imageKeys) > 0 {
		if len(o.imageKeys) > 0 && s.library == nil {
			return errors.New("--image-key needs a media library (set MINIO_ENDPOINT)")
		}
		if _, err := s.collector.Enter(picker.CategoryImages); err != nil {
			return err
		}
		uris := append([]string{}, o.images...)
		if len(o.imageKeys) > 0 {
			res, err := picker.LibraryImagePicker{Library: s.library, Keys: o.imageKeys, Expiry: s.presignExpiry()}.PickImages(ctx)
			if err != nil {
				s.collector.Cancel(picker.CategoryImages)
				return err
			}
			uris = append(uris, res.URIs...)
		}
		p := picker.ImagePickerFunc(func(context.Context) (picker.ImageResult, error) {
			return picker.ImageResult{URIs: uris}, nil
		})
		if out := s.collector.PickImages(ctx, p); out != picker.OutcomeConfirmed {
			return fmt.Errorf("images: %s", out)
		}
	}

	if o.cover != "" {
		if _, err := s.collector.Enter(picker.CategoryCover); err != nil {
			return err
		}
		cover := o.cover
		if err := s.collector.Confirm(picker.Selection{Category: picker.CategoryCover, URI: &cover}); err != nil {
			s.collector.Cancel(picker.CategoryCover)
			return fmt.Errorf("cover: %w", err)
		}
	}
	return nil
}
