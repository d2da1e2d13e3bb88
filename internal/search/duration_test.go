package search

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "Completa",
			input: "PT1H2M3S",
			want:  3723,
		},
		{
			name:  "Só minutos e segundos",
			input: "PT3M52S",
			want:  232,
		},
		{
			name:  "Só segundos",
			input: "PT45S",
			want:  45,
		},
		{
			name:  "Só horas",
			input: "PT2H",
			want:  7200,
		},
		{
			name:  "Vazia",
			input: "",
			want:  0,
		},
		{
			name:  "Malformada",
			input: "3 minutos",
			want:  0,
		},
		{
			name:  "Prefixo errado",
			input: "P1DT2H",
			want:  0,
		},
		{
			name:  "Lixo após componente",
			input: "PT1H2M3SX",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDuration(tt.input)
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
