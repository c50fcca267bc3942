package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// SingleImageName is the file name of the only image of a scene.
// sceneNumber is 1-based.
func SingleImageName(sceneNumber int, format string) string {
	return fmt.Sprintf("image_%03d.%s", sceneNumber, format)
}

// MultiImageName is the file name of one image of a multi-image scene.
// sceneNumber and imageNumber are 1-based.
func MultiImageName(sceneNumber, imageNumber int, format string) string {
	return fmt.Sprintf("image_%03d_%02d.%s", sceneNumber, imageNumber, format)
}

// ExpectedImageNames lists the files a scene should have produced. A scene
// with one image uses the plain name; otherwise images are numbered from 01.
func ExpectedImageNames(sceneNumber, imageCount int, format string) []string {
	if imageCount == 1 {
		return []string{SingleImageName(sceneNumber, format)}
	}
	if imageCount < 1 {
		return nil
	}
	names := make([]string, 0, imageCount)
	for i := 1; i <= imageCount; i++ {
		names = append(names, MultiImageName(sceneNumber, i, format))
	}
	return names
}

// ResolveImagePath finds the file for image imgIdx (0-based) of scene
// sceneIdx (0-based). Single-image scenes also accept the "_01" name.
// It returns "" when no candidate exists.
func ResolveImagePath(dir string, sceneIdx, imgIdx, imageCount int, format string) string {
	var candidates []string
	if imageCount == 1 {
		candidates = []string{
			SingleImageName(sceneIdx+1, format),
			MultiImageName(sceneIdx+1, 1, format),
		}
	} else {
		candidates = []string{MultiImageName(sceneIdx+1, imgIdx+1, format)}
	}
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
