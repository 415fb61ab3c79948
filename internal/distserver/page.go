package distserver

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Microsoft Office 97 - Download</title>
<style>
body { background: #008080; font-family: 'MS Sans Serif', Tahoma, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; }
.window { background: #c0c0c0; border: 2px solid; border-color: #ffffff #808080 #808080 #ffffff; width: 520px; box-shadow: 1px 1px 0 #000; }
.titlebar { background: linear-gradient(90deg, #000080, #1084d0); color: white; padding: 3px 5px; font-weight: bold; font-size: 12px; }
.content { padding: 20px; text-align: center; }
.logo { display: flex; gap: 8px; justify-content: center; margin-bottom: 12px; }
.app-icon { width: 40px; height: 40px; display: flex; align-items: center; justify-content: center; color: #fff; font-size: 20px; font-weight: bold; font-family: 'Times New Roman', serif; }
.w { background: #2b579a; } .x { background: #217346; } .p { background: #d04423; } .a { background: #a4373a; } .o { background: #0072c6; }
h2 { margin: 5px 0; font-size: 16px; }
p { font-size: 12px; color: #000; margin: 8px 0; }
.btn { background: #c0c0c0; border: 2px solid; border-color: #ffffff #808080 #808080 #ffffff; padding: 6px 24px; font-size: 12px; text-decoration: none; color: #000; display: inline-block; margin-top: 10px; }
.btn:active { border-color: #808080 #ffffff #ffffff #808080; }
.apps { font-size: 11px; color: #444; margin-top: 12px; text-align: left; padding: 8px; background: #fff; border: 1px solid #808080; }
.info { font-size: 10px; color: #808080; margin-top: 10px; }
</style>
</head>
<body>
<div class="window">
  <div class="titlebar">Microsoft Office 97 Professional - Download</div>
  <div class="content">
    <div class="logo">
      <div class="app-icon w">W</div><div class="app-icon x">X</div><div class="app-icon p">P</div><div class="app-icon a">A</div><div class="app-icon o">O</div>
    </div>
    <h2>Microsoft Office 97 Professional Edition</h2>
    <p>Version {{.Version}} | Windows x64 | {{.Size}}</p>
    <div class="apps">
      <b>Included Applications:</b><br>
      - Microsoft Word 97<br>
      - Microsoft Excel 97<br>
      - Microsoft PowerPoint 97<br>
      - Microsoft Access 97<br>
      - Microsoft Outlook 97
    </div>
    <a class="btn" href="/download">Download Setup</a>
    <div class="info">Run the installer to set up Office 97 on your computer.</div>
  </div>
</div>
</body>
</html>
`
