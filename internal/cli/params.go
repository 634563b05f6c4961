package cli

import "encoding/json"

func decodeJSONStringSlice(data string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSONStringMap(data string) (map[string]string, error) {
	var out map[string]string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, err
	}
	return out, nil
}
