package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "api",
			objectType:  "entry",
			identifier:  "775",
			expectedKey: "drh:api:entry:775",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "api",
			objectType:  "entry",
			identifier:  "775",
			paramsKey:   []string{},
			expectedKey: "drh:api:entry:775",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "api",
			objectType:  "entries",
			identifier:  "list",
			paramsKey:   []string{"region-4", "limit-25"},
			expectedKey: "drh:api:entries:list:region-4_limit-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestEntryKey(t *testing.T) {
	if got := EntryKey(42); got != "drh:api:entry:42" {
		t.Errorf("EntryKey() = %v", got)
	}
	if got := RelationsKey(); got != "drh:api:questionrelation:all" {
		t.Errorf("RelationsKey() = %v", got)
	}
}
