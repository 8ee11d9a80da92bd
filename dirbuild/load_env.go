package dirbuild

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sass-format/go-sass/debug"
)

const (
	ConstantsEnv = "SASS_CONSTANTS"
)

// LoadEnv reads constant overrides from $SASS_CONSTANTS, a JSON object
// mapping constant names to values.
func LoadEnv() (map[string]string, error) {
	v := os.Getenv(ConstantsEnv)
	if v == "" {
		return nil, nil
	}
	consts := map[string]string{}
	if err := json.Unmarshal([]byte(v), &consts); err != nil {
		return nil, fmt.Errorf("error decoding $%s: %w", ConstantsEnv, err)
	}
	if debug.Build() {
		debug.Logf("loaded constants from env: %v\n", consts)
	}
	return consts, nil
}
