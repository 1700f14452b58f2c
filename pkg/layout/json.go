package layout

import (
	"encoding/json"
	"fmt"

	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/config"
)

// JSONObject reduces a collection result to the --json object: label to
// value, the header row under "user_host", palette rows left out. Byte
// counts for memory and swap are added when those modules are in the
// layout.
func JSONObject(res Result, cfg *config.Config) map[string]any {
	obj := make(map[string]any, len(res.Rows)+4)
	for _, r := range res.Rows {
		if r.Key == "palette" {
			continue
		}
		key := r.Label
		if r.IsHeader() {
			key = "user_host"
		}
		obj[key] = components.Strip(r.Value)
	}

	var memUsed, memTotal, swapUsed, swapTotal uint64
	if s := res.Snapshot; s != nil {
		memUsed, memTotal = s.Memory.Used, s.Memory.Total
		swapUsed, swapTotal = s.Swap.Used, s.Swap.Total
	}
	if cfg.HasModule("memory") {
		obj["memory_used_bytes"] = memUsed
		obj["memory_total_bytes"] = memTotal
	}
	if cfg.HasModule("swap") {
		obj["swap_used_bytes"] = swapUsed
		obj["swap_total_bytes"] = swapTotal
	}
	return obj
}

// JSON encodes JSONObject with two-space indentation and sorted keys.
func JSON(res Result, cfg *config.Config) ([]byte, error) {
	data, err := json.MarshalIndent(JSONObject(res, cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return data, nil
}
