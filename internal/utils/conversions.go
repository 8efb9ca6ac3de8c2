package utils

import "strconv"

// ToStringSlice formats integer identities for logs and CLI output.
func ToStringSlice[T ~int | ~int64](values []T) []string {
	stringSlice := make([]string, 0, len(values))
	for _, v := range values {
		stringSlice = append(stringSlice, strconv.FormatInt(int64(v), 10))
	}
	return stringSlice
}
