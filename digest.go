package devfesttools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gdgmilano/devfest-tools/pkg/constants"
	"github.com/gdgmilano/devfest-tools/pkg/digest"
	"github.com/gdgmilano/devfest-tools/pkg/logging"
)

// Digest renders every digest file from the snapshots loaded at run start.
// Within a run that also synced, that is the pre-sync state: the snapshots
// are loaded once per run and cached, so digests describe the data the run
// started from. Run the tool again to digest freshly merged data.
func (c *client) Digest(ctx context.Context) error {
	data, err := c.digestData()
	if err != nil {
		return err
	}
	cfg := c.config.digest

	outputs := []struct {
		file   string
		render func() (string, error)
	}{
		{constants.SocialFile, func() (string, error) { return digest.Social(data, cfg) }},
		{constants.AgendaByTagFile, func() (string, error) { return digest.AgendaByTag(data, cfg) }},
		{constants.AgendaFullFile, func() (string, error) { return digest.AgendaFull(data) }},
		{constants.AgendaCompactFile, func() (string, error) { return digest.AgendaCompact(data) }},
		{constants.AgendaTalksFile, func() (string, error) { return digest.AgendaTalksOnly(data) }},
		{constants.AgendaSlidesFile, func() (string, error) { return digest.AgendaSlides(data) }},
	}

	for _, out := range outputs {
		text, err := out.render()
		if err != nil {
			return err
		}
		path := filepath.Join(c.config.dataDir, out.file)
		if err := os.WriteFile(path, []byte(text), constants.FilePermissions); err != nil {
			return err
		}
		logging.Ctx(ctx).Debug().Str("file", out.file).Msg("Digest written")
	}

	logging.Ctx(ctx).Info().Int("files", len(outputs)).Msg("Digests rendered")
	return nil
}

func (c *client) digestData() (digest.Data, error) {
	schedule, err := c.store.Schedule()
	if err != nil {
		return digest.Data{}, err
	}
	sessions, err := c.store.Sessions()
	if err != nil {
		return digest.Data{}, err
	}
	speakers, err := c.store.Speakers()
	if err != nil {
		return digest.Data{}, err
	}
	return digest.Data{
		Schedule: schedule,
		Sessions: sessions,
		Speakers: speakers,
	}, nil
}
