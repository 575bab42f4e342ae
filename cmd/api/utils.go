package main

import "strconv"

func parseLimitOrDefault(limitStr string, def int) int {
	if limitStr == "" {
		return def
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		return l
	}
	return def
}
