package filegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudnative-incubator/vpc-aws/filereader/texttemplate"
)

func CreateFileFromTemplate(outputFilePath string, templateOpts interface{}, fileTemplate []byte) error {
	cfgTemplate, err := texttemplate.Parse(filepath.Base(outputFilePath), string(fileTemplate), nil)
	if err != nil {
		return fmt.Errorf("error parsing default config template: %v", err)
	}

	dir := filepath.Dir(outputFilePath)

	if _, err := os.Stat(dir); err != nil && os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}

	out, err := os.OpenFile(outputFilePath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("error opening %s : %v", outputFilePath, err)
	}
	defer out.Close()
	if err := cfgTemplate.Execute(out, templateOpts); err != nil {
		return fmt.Errorf("error exec-ing default config template: %v", err)
	}
	return nil
}
