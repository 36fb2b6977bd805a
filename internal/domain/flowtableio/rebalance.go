package flowtableio

import (
	"fmt"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// Rebalance spreads the total gamma of id evenly over its receivers.
func Rebalance(t *m.FlowTable, id m.FQPatchID) error {
	entry, err := EntryForKey(t, id)
	if err != nil {
		return err
	}

	receivers, err := ReceiversForKey(t, id)
	if err != nil {
		return err
	}

	if len(receivers) == 0 {
		return fmt.Errorf("patch %s has no receivers to rebalance", id)
	}

	share := entry.TotalGamma / float64(len(receivers))
	for _, recv := range receivers {
		recv.Gamma = share
	}

	return nil
}
