package cli

import (
	"context"
	"fmt"

	"github.com/ralt/toml2index/internal/document"
	"github.com/ralt/toml2index/internal/filter"
	"github.com/ralt/toml2index/internal/index"
	"github.com/ralt/toml2index/internal/models"
	"github.com/ralt/toml2index/internal/signer"
	"github.com/ralt/toml2index/internal/utils"
	"github.com/sirupsen/logrus"
)

func validateConfig(config *models.ConvertConfig) error {
	if config.InputPath == "" {
		return &models.IndexError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("input file is required"),
		}
	}

	if config.OutputPath == "" {
		return &models.IndexError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("output is required"),
		}
	}

	if !config.NoPandoc && config.PandocCommand == "" {
		config.PandocCommand = filter.DefaultCommand
	}

	for _, name := range config.Compress {
		if _, err := utils.ParseCompression(name); err != nil {
			return &models.IndexError{
				Type: models.ErrInvalidConfig,
				Err:  err,
			}
		}
	}

	if config.PublicKeyPath != "" && config.GPGKeyPath == "" {
		return &models.IndexError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("--export-key requires --gpg-key"),
		}
	}

	return nil
}

func runConversion(ctx context.Context, config *models.ConvertConfig) error {
	// Step 1: Initialize the signer before doing any work
	var gpgSigner signer.Signer
	if config.GPGKeyPath != "" {
		s, err := signer.NewGPGSigner(config.GPGKeyPath, config.GPGPassphrase)
		if err != nil {
			return &models.IndexError{
				Type: models.ErrSigning,
				Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
			}
		}
		gpgSigner = s
		logrus.Info("GPG signer initialized")
	}

	var descFilter filter.Filter
	if !config.NoPandoc {
		cmd, err := filter.NewCommand(config.PandocCommand)
		if err != nil {
			return err
		}
		descFilter = cmd
	}

	// Step 2: Build the whole document in memory
	logrus.Infof("Reading %s", config.InputPath)
	data, err := document.LoadFile(config.InputPath)
	if err != nil {
		return err
	}

	root, err := index.NewConverter(descFilter).Convert(ctx, data)
	if err != nil {
		return err
	}

	xmlData, err := index.Marshal(root)
	if err != nil {
		return &models.IndexError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to encode index: %w", err),
		}
	}

	// Step 3: Nothing is written until the tree is complete
	return publish(config, xmlData, gpgSigner)
}

func publish(config *models.ConvertConfig, xmlData []byte, gpgSigner signer.Signer) error {
	if err := writeArtifact(config.OutputPath, xmlData); err != nil {
		return err
	}

	for _, name := range config.Compress {
		c, err := utils.ParseCompression(name)
		if err != nil {
			return err
		}

		compressed, err := utils.Compress(c, xmlData)
		if err != nil {
			return &models.IndexError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to compress index with %s: %w", c, err),
			}
		}
		if err := writeArtifact(config.OutputPath+c.Extension(), compressed); err != nil {
			return err
		}
	}

	if gpgSigner != nil {
		signature, err := gpgSigner.SignDetached(xmlData)
		if err != nil {
			return &models.IndexError{
				Type: models.ErrSigning,
				Err:  fmt.Errorf("failed to sign %s: %w", config.OutputPath, err),
			}
		}
		if err := writeArtifact(config.OutputPath+".asc", signature); err != nil {
			return err
		}

		if config.PublicKeyPath != "" {
			pub, err := gpgSigner.GetPublicKey()
			if err != nil {
				return &models.IndexError{
					Type: models.ErrSigning,
					Err:  fmt.Errorf("failed to export public key: %w", err),
				}
			}
			if err := writeArtifact(config.PublicKeyPath, pub); err != nil {
				return err
			}
		}
	}

	logrus.Info("Index generation completed successfully!")
	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := utils.WriteFile(path, data, 0644); err != nil {
		return &models.IndexError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  fmt.Errorf("failed to write file: %w", err),
		}
	}

	sum := utils.CalculateChecksum(data)
	logrus.Infof("Wrote %s (%d bytes, sha256 %s)", path, sum.Size, sum.SHA256)
	return nil
}
