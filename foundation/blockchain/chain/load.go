package chain

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// LoadFile reads and validates a single chain document.
func LoadFile(fileName string) (Document, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return Document{}, err
	}

	doc, err := Decode(content)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", filepath.Base(fileName), err)
	}

	return doc, nil
}

// LoadFolder reads every json file under the root folder as a chain document.
// Documents are returned in file name order.
func LoadFolder(root string) ([]Document, error) {
	var fileNames []string

	fn := func(fileName string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walkdir failure: %w", err)
		}

		if d.IsDir() || filepath.Ext(fileName) != ".json" {
			return nil
		}

		fileNames = append(fileNames, fileName)
		return nil
	}

	if err := filepath.WalkDir(root, fn); err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	slices.Sort(fileNames)

	docs := make([]Document, 0, len(fileNames))
	for _, fileName := range fileNames {
		doc, err := LoadFile(fileName)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
