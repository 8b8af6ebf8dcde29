package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		return &t, nil
	}
	t, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return nil, err
	}
	t = time.Date(time.Now().Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return &t, nil
}
