// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"fmt"

	"github.com/pdiddy/ocr-workbench/internal/mistral"
)

// Delete removes one uploaded document from the service. An empty remote
// list skips the operation.
func (o *Operations) Delete(ctx context.Context) Result {
	file, res, ok := o.selectRemote(ctx, "Select a document to delete", func(f mistral.File) string {
		return fmt.Sprintf("%s (%s)", f.Filename, f.ID)
	})
	if !ok {
		return res
	}

	o.Indicator.Start("Deleting " + file.Filename)
	if err := o.Client.DeleteFile(ctx, file.ID); err != nil {
		o.Indicator.Stop(false, err.Error())
		return failed(err)
	}
	o.Indicator.Stop(true, "Deleted "+file.Filename)

	return done("deleted %s (%s)", file.Filename, file.ID)
}
