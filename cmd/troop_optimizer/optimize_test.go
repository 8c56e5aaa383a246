package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/troop-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeCommand_CatalogUnits(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize",
		"--budget", "5500,3900,7100,3000",
		"--troop1", "Elpida Rider",
		"--troop2", "shieldsman",
		"--step", "5",
		"--window", "5")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Troop 1: 4, Troop 2: 20, Remaining Sum: 3140")
	assert.Contains(t, string(output), "Elpida Rider x 4")
	assert.Contains(t, string(output), "lumber=380,clay=220,iron=880,crop=1660")
}

func TestOptimizeCommand_RawCostsAndExclude(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize",
		"--budget", "lumber=100,clay=100,iron=100,crop=60",
		"--cost1", "10,10,10,10",
		"--cost2", "10,10,10,0",
		"--step", "1",
		"--window", "0",
		"--exclude", "crop")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Troop 1: 5, Troop 2: 5, Remaining Sum: 0")
	assert.Contains(t, string(output), "crop=10")
}

func TestOptimizeCommand_WritesReport(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outFile := filepath.Join(t.TempDir(), "result.json")

	cmd := exec.Command(binaryPath, "optimize",
		"--budget", "5500,3900,7100,3000",
		"--troop1", "ElpidaRider",
		"--troop2", "Shieldsman",
		"--step", "5",
		"--window", "5",
		"--workers", "4",
		"--out", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Report written to")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var report types.OptimizeReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "spartans", report.Tribe)
	assert.Equal(t, "Elpida Rider", report.Troop1)
	assert.Equal(t, 4, report.Allocation.N1)
	assert.Equal(t, 20, report.Allocation.N2)
	assert.Equal(t, int64(3140), report.Allocation.LeftoverSum)
	assert.Equal(t, types.Candidate{N1: 5, N2: 15, Score: 4350}, report.Allocation.Coarse)
}

func TestOptimizeCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cfgFile := filepath.Join(t.TempDir(), "troops.yaml")
	content := `budget: {lumber: 1000, clay: 1000, iron: 1000, crop: 1000}
cost1: {lumber: 100, clay: 100, iron: 100, crop: 100}
cost2: {lumber: 50, clay: 50, iron: 50, crop: 50}
step: 10
window: 5
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))

	cmd := exec.Command(binaryPath, "optimize", "--config", cfgFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Troop 1: 8, Troop 2: 4, Remaining Sum: 0")

	// Flags override the file
	cmd = exec.Command(binaryPath, "optimize", "--config", cfgFile, "--window", "0")
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Troop 1: 10, Troop 2: 0, Remaining Sum: 0")
}

func TestOptimizeCommand_MissingBudget(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize", "--troop1", "Hoplite", "--troop2", "Sentinel")
	cmd.Env = append(os.Environ(), "TROOP_OPTIMIZER_CONFIG=")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "a budget must be provided")
}

func TestOptimizeCommand_MutuallyExclusiveFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize",
		"--budget", "1,1,1,1",
		"--troop1", "Hoplite",
		"--cost1", "1,1,1,1",
		"--troop2", "Sentinel")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "troop1")
	assert.Contains(t, string(output), "cost1")
}

func TestOptimizeCommand_InvalidStep(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize",
		"--budget", "1,1,1,1",
		"--cost1", "1,1,1,1",
		"--cost2", "1,1,1,1",
		"--step", "0")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--step must be at least 1")
}
