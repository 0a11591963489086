// Package service orchestrates the processing of a single changelist.
package service

import (
	"context"
	"fmt"

	"github.com/cappuccinotm/damlink/app/link"
	"github.com/cappuccinotm/damlink/app/p4"
	"github.com/cappuccinotm/damlink/pkg/logx"
)

//go:generate rm -f attacher_mock.go
//go:generate moq -out attacher_mock.go -fmt goimports . Attacher

// Attacher is the subset of the DAM client the linker needs.
type Attacher interface {
	// AttachWeblink associates the weblink with the depot asset.
	AttachWeblink(ctx context.Context, assetPath, weblink string) error
}

// Linker attaches the weblinks found in a changelist description to every
// file of that changelist in the DAM.
type Linker struct {
	Changes p4.Describer
	DAM     Attacher
	Log     logx.Logger
}

// Run processes the changelist: fetches its description and file list,
// extracts the weblinks and attaches every link to every file, one pair
// at a time. An attach failure is logged and does not stop the remaining
// pairs, a single bad link or file never aborts the whole changelist.
func (s *Linker) Run(ctx context.Context, changelist string) error {
	cl, err := s.Changes.Describe(ctx, changelist)
	if err != nil {
		return fmt.Errorf("describe changelist %s: %w", changelist, err)
	}

	weblinks := link.Weblinks(cl.Description)

	if review, ok := link.ReviewReference(cl.Description); ok {
		// TODO: attach the review link once the DAM exposes review references
		s.Log.Printf("[DEBUG] changelist %s refers to review %s", changelist, review)
	}

	s.Log.Printf("[INFO] changelist %s: %d weblinks to attach to %d files",
		changelist, len(weblinks), len(cl.Files))

	for _, file := range cl.Files {
		for _, weblink := range weblinks {
			if err := s.DAM.AttachWeblink(ctx, file, weblink); err != nil {
				s.Log.Printf("[WARN] failed to attach %s to %s: %v", weblink, file, err)
			}
		}
	}

	return nil
}
