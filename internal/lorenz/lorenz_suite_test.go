package lorenz_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLorenz(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Lorenz Solver Suite")
}
