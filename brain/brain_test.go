package brain

import (
	"testing"

	"evosim/gene"
	"evosim/neuron"
)

func mkGene(inputType gene.InputType, rawSource uint64, outputType gene.OutputType, rawDest uint64, rawWeight uint64, activation uint64) gene.Gene {
	var g uint64
	g |= uint64(inputType) << 62
	g |= (rawSource & 0x3FF) << 52
	g |= uint64(outputType) << 50
	g |= (rawDest & 0x3FF) << 40
	g |= (rawWeight & 0xFFFFFF) << 16
	g |= (activation & 0xFF) << 8
	return gene.Gene(g)
}

func TestBuild_DiscoversNeuronsInFirstSeenOrder(t *testing.T) {
	genome := []gene.Gene{
		mkGene(gene.InputSensory, 2, gene.OutputInternal, 0, 8388608+2097152, 0), // L_e(sensory idx2) -> I_0, weight 1.0
		mkGene(gene.InputInternal, 0, gene.OutputAction, 0, 8388608+2097152, 0),  // I_0 -> M_n, weight 1.0
	}
	b := Build(genome, neuron.DefaultBanks)

	if len(b.Neurons) != 3 {
		t.Fatalf("Neurons: expected 3, got %d", len(b.Neurons))
	}
	if b.Neurons[0].ID != neuron.L_e {
		t.Errorf("Neurons[0]: expected L_e, got %d", b.Neurons[0].ID)
	}
	if b.Neurons[1].ID != neuron.I_0 {
		t.Errorf("Neurons[1]: expected I_0, got %d", b.Neurons[1].ID)
	}
	if b.Neurons[2].ID != neuron.M_n {
		t.Errorf("Neurons[2]: expected M_n, got %d", b.Neurons[2].ID)
	}
	if len(b.Sensory) != 1 || b.Sensory[0] != 0 {
		t.Errorf("Sensory: expected [0], got %v", b.Sensory)
	}
	if len(b.Action) != 1 || b.Action[0] != 2 {
		t.Errorf("Action: expected [2], got %v", b.Action)
	}
}

func TestBuild_SkipsInertGenes(t *testing.T) {
	genome := []gene.Gene{
		mkGene(gene.InputInvalid, 0, gene.OutputAction, 0, 0, 0),
	}
	b := Build(genome, neuron.DefaultBanks)
	if len(b.Neurons) != 0 {
		t.Errorf("Neurons: expected 0 for an all-inert genome, got %d", len(b.Neurons))
	}
}

func TestBuild_SecondIntroductionKeepsFirstRole(t *testing.T) {
	genome := []gene.Gene{
		mkGene(gene.InputSensory, 0, gene.OutputInternal, 0, 8388608, 0), // introduces L_n as sensory, I_0 as internal
		mkGene(gene.InputInternal, 0, gene.OutputAction, 0, 8388608, 0),  // I_0 reintroduced, already internal
	}
	b := Build(genome, neuron.DefaultBanks)
	idx := b.IndexOf(neuron.I_0)
	if idx < 0 {
		t.Fatalf("IndexOf(I_0): expected a valid index")
	}
	if b.Neurons[idx].Role != neuron.RoleInternal {
		t.Errorf("I_0 role: expected Internal, got %v", b.Neurons[idx].Role)
	}
}

func TestSetSensoryData_UnknownIDIsNoOp(t *testing.T) {
	b := Build(nil, neuron.DefaultBanks)
	b.SetSensoryData(neuron.L_n, 5.0) // L_n was never introduced; must not panic
	if len(b.Neurons) != 0 {
		t.Errorf("Neurons: expected no neurons to be created by SetSensoryData")
	}
}
