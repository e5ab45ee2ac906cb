package pos

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
)

// SalesView shows the backend's daily aggregate. Pure read/display: no
// computation here beyond formatting.
type SalesView struct {
	api *client.Client
	log *logrus.Logger

	data   models.DailySales
	loaded bool
}

func NewSalesView(api *client.Client, log *logrus.Logger) *SalesView {
	if log == nil {
		log = logrus.New()
	}
	return &SalesView{api: api, log: log}
}

func (v *SalesView) Refresh(ctx context.Context) error {
	sales, err := v.api.TodaySales(ctx)
	if err != nil {
		return err
	}
	v.data = sales
	v.loaded = true
	return nil
}

// Current returns the last fetched aggregate and whether one has been
// fetched yet.
func (v *SalesView) Current() (models.DailySales, bool) {
	return v.data, v.loaded
}

// Watch refreshes on a fixed interval until ctx is cancelled. Each
// result replaces the previous one; failures keep the old data.
func (v *SalesView) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := v.Refresh(ctx); err != nil {
				v.log.Warnf("sales refresh: %v", err)
			}
		}
	}
}

// FormatDay renders a 2006-01-02 date the way the sales header shows it.
func FormatDay(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "本日"
	}
	return t.Format("2006年1月2日")
}
