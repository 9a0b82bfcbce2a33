// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBf(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "bf-go suite")
}
