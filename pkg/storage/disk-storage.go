package storage

import (
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path"

	"github.com/propstack/estate-finder/pkg/types"
)

func init() {
	gob.Register(types.Listing{})
	gob.Register([]string{})
}

const listingsFile = "listings.gz"
const settingsFile = "settings.json"

type DiskStorage struct {
	Prefix string
	Path   string
}

func NewDiskStorage(prefix, basePath string) *DiskStorage {
	return &DiskStorage{
		Prefix: prefix,
		Path:   basePath,
	}
}

func (d *DiskStorage) GetFileName(name string) string {
	return path.Join(d.Path, d.Prefix+"_"+name)
}

func (d *DiskStorage) LoadSettings() error {
	types.CurrentSettings.Lock()
	defer types.CurrentSettings.Unlock()
	err := d.LoadJson(&types.CurrentSettings, settingsFile)
	types.CurrentSettings.Normalize()
	return err
}

func (d *DiskStorage) SaveSettings() error {
	types.CurrentSettings.RLock()
	defer types.CurrentSettings.RUnlock()
	return d.SaveJson(&types.CurrentSettings, settingsFile)
}

// SaveListings writes the snapshot to a temp file and renames it in place so
// a crash mid-save never corrupts the last good snapshot.
func (d *DiskStorage) SaveListings(listings []types.Listing) error {
	fileName := d.GetFileName(listingsFile)
	tmpName := fileName + ".tmp"
	file, err := os.Create(tmpName)
	if err != nil {
		return err
	}
	zipWriter := gzip.NewWriter(file)
	err = gob.NewEncoder(zipWriter).Encode(listings)
	if closeErr := zipWriter.Close(); err == nil {
		err = closeErr
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, fileName)
}

func (d *DiskStorage) LoadListings() ([]types.Listing, error) {
	fileName := d.GetFileName(listingsFile)
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zipReader.Close()

	listings := make([]types.Listing, 0)
	err = gob.NewDecoder(zipReader).Decode(&listings)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d listings from %s", len(listings), fileName)
	return listings, nil
}

func (d *DiskStorage) SaveJson(data any, name string) error {
	fileName := d.GetFileName(name)
	tmpName := fileName + ".tmp"
	file, err := os.Create(tmpName)
	if err != nil {
		return err
	}
	err = json.NewEncoder(file).Encode(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, fileName)
}

func (d *DiskStorage) LoadJson(data any, name string) error {
	file, err := os.Open(d.GetFileName(name))
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(data)
}
