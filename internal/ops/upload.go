// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Upload sends one inbox file to the service with the workflow's purpose
// tag. An empty inbox skips the operation; no remote call is made.
func (o *Operations) Upload(ctx context.Context) Result {
	names, err := o.Workspace.ListInbox()
	if err != nil {
		return failed(err)
	}
	if len(names) == 0 {
		return skipped("no files in %s; drop a PDF there first", o.Workspace.InboxDir)
	}

	idx, err := o.Prompter.Select("Select a file to upload", names)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return cancelled()
		}
		return failed(err)
	}
	name := names[idx]

	content, err := os.ReadFile(filepath.Join(o.Workspace.InboxDir, name))
	if err != nil {
		return failed(fmt.Errorf("reading %s: %w", name, err))
	}

	o.Indicator.Start("Uploading " + name)
	file, err := o.Client.UploadFile(ctx, name, content, Purpose)
	if err != nil {
		o.Indicator.Stop(false, err.Error())
		return failed(err)
	}
	o.Indicator.Stop(true, fmt.Sprintf("Uploaded %s (%s)", name, file.ID))

	return done("uploaded %s", name)
}
