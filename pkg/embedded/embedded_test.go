package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"variants/classic.yaml": &fstest.MapFile{Data: []byte("id: classic\n")},
		"variants/keeper.yaml":  &fstest.MapFile{Data: []byte("id: keeper\n")},
		"clips.yaml":            &fstest.MapFile{Data: []byte("units: {}\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/clips.yaml")
	if err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试按 data/ 前缀读取
func TestReadFile(t *testing.T) {
	Init(testFS())

	data, err := ReadFile("data/variants/classic.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "id: classic\n" {
		t.Errorf("Unexpected content: %q", data)
	}

	if _, err := ReadFile("./data/clips.yaml"); err != nil {
		t.Errorf("ReadFile with ./ prefix failed: %v", err)
	}
}

// TestUnknownPrefix 测试非法前缀
func TestUnknownPrefix(t *testing.T) {
	Init(testFS())

	if _, err := ReadFile("assets/clips.yaml"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}

// TestGlob 测试匹配结果带回 data/ 前缀
func TestGlob(t *testing.T) {
	Init(testFS())

	matches, err := Glob("data/variants/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d: %v", len(matches), matches)
	}
	for _, m := range matches {
		if !Exists(m) {
			t.Errorf("Glob result %s does not exist", m)
		}
	}
}

// TestReadDir 测试读取目录
func TestReadDir(t *testing.T) {
	Init(testFS())

	entries, err := ReadDir("data/variants")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}

	root, err := ReadDir("data")
	if err != nil {
		t.Fatalf("ReadDir(data) failed: %v", err)
	}
	if len(root) != 2 {
		t.Errorf("Expected 2 root entries, got %d", len(root))
	}
}
