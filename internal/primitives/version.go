package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion returns a deterministic version for desc.
// Priority: user-provided desc.Version, else SHA256 of the description JSON.
// Tables built from the same rules with the same callbacks get the same
// version.
func ComputeVersion(desc *TableDescription) string {
	if desc.Version != "" {
		return desc.Version
	}

	data, err := json.Marshal(desc)
	if err != nil {
		// Fallback (should not happen: the description holds plain data)
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
