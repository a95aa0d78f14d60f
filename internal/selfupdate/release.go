package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

const binaryName = "rechenquiz"

// checksumsFile is published next to the archives of every release.
const checksumsFile = "checksums.txt"

// archLabels maps GOARCH onto the architecture names used in archive names.
var archLabels = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// asset names a release archive and the executable packed inside it.
type asset struct {
	archive string
	binary  string
}

// assetFor picks the archive for a platform. macOS ships one universal build.
func assetFor(goos, goarch string) (asset, error) {
	if goos == "darwin" {
		return asset{archive: binaryName + "_Darwin_all.tar.gz", binary: binaryName}, nil
	}

	arch, ok := archLabels[goarch]
	if !ok {
		return asset{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
	}

	switch goos {
	case "linux":
		return asset{archive: fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch), binary: binaryName}, nil
	case "windows":
		return asset{archive: fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch), binary: binaryName + ".exe"}, nil
	}
	return asset{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
}

// unpack returns the executable from the archive bytes.
func (a asset) unpack(archive []byte) ([]byte, error) {
	open := untar
	if strings.HasSuffix(a.archive, ".zip") {
		open = unzip
	}

	data, err := open(archive, a.binary)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", a.archive, err)
	}
	return data, nil
}

var errNotInArchive = errors.New("executable not found in archive")

func untar(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, errNotInArchive
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func unzip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		return data, err
	}
	return nil, errNotInArchive
}

// checksumFor looks up the sha256 of name in a "<hex>  <file>" listing.
func checksumFor(listing []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(listing))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return strings.ToLower(fields[0]), nil
		}
	}
	return "", fmt.Errorf("%w: %s is not listed in %s", ErrChecksum, name, checksumsFile)
}

func verifySHA256(data []byte, want string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, want, got)
	}
	return nil
}
